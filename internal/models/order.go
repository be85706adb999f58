package models

import "time"

const (
	OrderStatusActive    = "active"
	OrderStatusCancelled = "cancelled"
)

// Order est l'abonnement instancié d'un utilisateur. Une commande n'est
// créée qu'au paiement confirmé (webhook) et n'est jamais supprimée :
// seul son statut évolue.
type Order struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"userId"`
	SubscriptionTierID int64      `json:"subscriptionTierId"`
	StripeSessionID    string     `json:"-"`
	Status             string     `json:"status"`
	OrderDate          time.Time  `json:"orderDate"`
	DeliveryDate       *time.Time `json:"deliveryDate,omitempty"`
	TrackingNumber     *string    `json:"trackingNumber,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
