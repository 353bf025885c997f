package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	// The owned-note identifier set, stored as a jsonb document. Appends are
	// read-modify-write on the single row; last write wins.
	Notes     datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	CreatedAt time.Time                      `gorm:"autoCreateTime"`
	UpdatedAt time.Time                      `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
