package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName keeps the collection name the stored data was created under.
func (User) TableName() string { return "usuarios" }
