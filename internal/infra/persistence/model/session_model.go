package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'user_sessions' table. Each row tracks one login
// session and the refresh token currently bound to it.
type SessionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_sessions_user_active,priority:1"`
	TokenID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	IPAddress    string     `gorm:"type:varchar(45)"`
	UserAgent    string     `gorm:"type:varchar(512)"`
	Active       bool       `gorm:"not null;default:true;index:idx_user_sessions_user_active,priority:2"`
	CreatedAt    time.Time  `gorm:"index"`
	LastActiveAt time.Time  `gorm:"not null"`
	EndedAt      *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "user_sessions"
}

// RevokedTokenModel mirrors the 'revoked_tokens' table. The primary key on
// TokenID is what makes refresh rotation race-safe: only one INSERT for a
// given token can ever succeed.
type RevokedTokenModel struct {
	TokenID   uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}
