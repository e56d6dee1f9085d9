package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username            string    `gorm:"type:varchar(150);unique;not null"`
	Email               string    `gorm:"type:varchar(255);not null"`
	FirstName           string    `gorm:"type:varchar(100)"`
	LastName            string    `gorm:"type:varchar(100)"`
	Role                string    `gorm:"type:varchar(20);not null;index;check:role IN ('admin','qa','operator')"`
	EmployeeID          *string   `gorm:"type:varchar(50);uniqueIndex"`
	Department          string    `gorm:"type:varchar(100)"`
	Phone               string    `gorm:"type:varchar(20)"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	Active              bool      `gorm:"not null;default:true;index"`
	LastLoginIP         string    `gorm:"type:varchar(45)"`
	FailedLoginAttempts int       `gorm:"not null;default:0"`
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time

	Sessions []SessionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
