package models

import "time"

// SubscriptionTier est une formule d'abonnement du catalogue.
// MonthlyAmount reste une chaîne décimale ("34.99") pour éviter
// toute perte de précision avant la conversion en centimes.
type SubscriptionTier struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	MonthlyAmount   string    `json:"monthlyAmount"`
	CoffeeAmount    int       `json:"coffeeAmount"` // en grammes
	Features        []string  `json:"features"`
	StripeProductID string    `json:"stripeProductId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
