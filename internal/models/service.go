package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`

	DurationMin int `json:"duration_min"`

	// Fixed price, or a min/max band for services priced on the spot.
	Price    float64 `json:"price"`
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`

	Active  bool `gorm:"default:true" json:"active"`
	Popular bool `gorm:"default:false" json:"popular"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
