package models

import "time"

type Table struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Number int `gorm:"uniqueIndex;not null" json:"number"`
	Seats  int `gorm:"not null" json:"seats"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
