package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Category string `gorm:"size:50" json:"category"`
	Bio      string `gorm:"size:500" json:"bio"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
