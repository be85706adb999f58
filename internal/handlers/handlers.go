package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"brewhaus_back_end/internal/models"
)

// Interfaces consommées par les handlers, satisfaites par les dépôts, le
// client de paiement et le réconciliateur construits dans main.

type TierStore interface {
	List(ctx context.Context) ([]models.SubscriptionTier, error)
	GetByID(ctx context.Context, id int64) (*models.SubscriptionTier, error)
}

type OrderStore interface {
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Order, error)
}

type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type CheckoutCreator interface {
	CreateSubscriptionCheckout(ctx context.Context, user models.AuthUser, tier models.SubscriptionTier) (string, error)
}

type WebhookReconciler interface {
	Process(ctx context.Context, payload []byte, sigHeader string) error
}

type Handler struct {
	tiers     TierStore
	orders    OrderStore
	users     UserStore
	payments  CheckoutCreator
	hook      WebhookReconciler
	jwtSecret string
}

func New(tiers TierStore, orders OrderStore, users UserStore, payments CheckoutCreator, hook WebhookReconciler, jwtSecret string) *Handler {
	return &Handler{
		tiers:     tiers,
		orders:    orders,
		users:     users,
		payments:  payments,
		hook:      hook,
		jwtSecret: jwtSecret,
	}
}

// authUserFrom reconstruit l'identité posée par le middleware JWT.
func authUserFrom(c *gin.Context) (models.AuthUser, bool) {
	id, ok := c.Get("user_id")
	if !ok {
		return models.AuthUser{}, false
	}
	userID, ok := id.(int64)
	if !ok || userID == 0 {
		return models.AuthUser{}, false
	}
	return models.AuthUser{ID: userID, Email: c.GetString("email")}, true
}
