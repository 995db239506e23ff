package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the login account. The system ships with a single seeded admin;
// there is no role or permission model beyond requiring a valid session.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:'user'"`
	CreatedAt    time.Time
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
