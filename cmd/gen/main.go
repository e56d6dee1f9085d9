package main

import (
	"mesauth/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SessionModel{},
		model.RevokedTokenModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
