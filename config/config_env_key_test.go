package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"accessTokenTtl": "1h",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTtl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAuthDefaults(t *testing.T) {
	cfg := &Config{}
	applyAuthDefaults(cfg)

	if cfg.Auth == nil {
		t.Fatal("applyAuthDefaults left Auth nil")
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("AccessTokenTTL = %v, want %v", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	}
	if cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("RefreshTokenTTL = %v, want %v", cfg.Auth.RefreshTokenTTL, defaultRefreshTokenTTL)
	}
	if cfg.Auth.QueryTimeout != defaultQueryTimeout {
		t.Fatalf("QueryTimeout = %v, want %v", cfg.Auth.QueryTimeout, defaultQueryTimeout)
	}
}
