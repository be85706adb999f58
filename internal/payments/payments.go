// Package payments encapsule le client Stripe, construit explicitement au
// démarrage et injecté dans les handlers (pas de clé globale).
package payments

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/client"

	"brewhaus_back_end/internal/models"
	"brewhaus_back_end/internal/utils"
)

// L'appel Stripe est borné : en cas de dépassement on remonte l'erreur à
// l'utilisateur, qui peut relancer le checkout lui-même.
const checkoutTimeout = 15 * time.Second

type Client struct {
	api     *client.API
	baseURL string
}

func New(secretKey, baseURL string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api, baseURL: baseURL}
}

// CreateSubscriptionCheckout crée une session de paiement hébergée pour une
// formule d'abonnement et renvoie l'URL de redirection. Les identifiants
// userId/tierId sont attachés en metadata : c'est le seul canal qui permettra
// au webhook de rattacher l'événement à une commande.
func (c *Client) CreateSubscriptionCheckout(ctx context.Context, user models.AuthUser, tier models.SubscriptionTier) (string, error) {
	unitAmount, err := utils.AmountToCents(tier.MonthlyAmount)
	if err != nil {
		return "", fmt.Errorf("montant formule %d: %w", tier.ID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, checkoutTimeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(tier.Name),
						Description: stripe.String(tier.Description),
					},
					UnitAmount: stripe.Int64(unitAmount),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String("month"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(c.baseURL + "/subscription/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(c.baseURL + "/subscription/cancel"),
		CustomerEmail: stripe.String(user.Email),
	}
	params.Context = ctx
	params.AddMetadata("userId", strconv.FormatInt(user.ID, 10))
	params.AddMetadata("tierId", strconv.FormatInt(tier.ID, 10))

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
