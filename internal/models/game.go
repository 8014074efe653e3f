package models

import "gorm.io/gorm"

// Game is a stored entry of the games collection.
type Game struct {
	gorm.Model
	Title       string  `gorm:"size:255;not null"`
	Genre       string  `gorm:"size:100;index"`
	Platform    string  `gorm:"size:100;index"`
	ReleaseYear int
	Rating      float64
	Cover       string `gorm:"size:512"`
}
