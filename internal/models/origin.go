package models

import "time"

type CoffeeOrigin struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Country      string    `json:"country"`
	Region       string    `json:"region,omitempty"`
	Description  string    `json:"description,omitempty"`
	TastingNotes []string  `json:"tastingNotes,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
}
