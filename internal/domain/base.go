package domain

import (
	"time"
)

// BaseModel contains the common columns shared by all entities.
// IDs are numeric and auto-incremented by the database; they are never reused
// or mutated after creation.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
