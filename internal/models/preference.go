package models

import "time"

// CoffeePreference est le résultat du quiz de préférences (une ligne par utilisateur).
type CoffeePreference struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	GrindType        string    `json:"grindType,omitempty"`        // whole, ground
	RoastLevel       string    `json:"roastLevel,omitempty"`       // light, medium, dark
	OriginPreference string    `json:"originPreference,omitempty"` // casual, regular, daily, heavy
	BlendPreference  string    `json:"blendPreference,omitempty"`  // single, blend, both
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
