package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brewhaus_back_end/internal/models"
)

// ErrNotFound est renvoyée quand l'entité demandée n'existe pas.
var ErrNotFound = errors.New("not found")

// Orders est le dépôt des commandes d'abonnement.
type Orders struct {
	pool *pgxpool.Pool
}

func NewOrders(pool *pgxpool.Pool) *Orders {
	return &Orders{pool: pool}
}

// CreateActive insère une commande active en une seule instruction atomique.
// Une redelivery du même checkout (même user, même formule, même session
// Stripe) ne crée pas de doublon : l'insert ne touche aucune ligne et la
// fonction renvoie created=false, ce qui est un succès.
func (o *Orders) CreateActive(ctx context.Context, userID, tierID int64, stripeSessionID string, orderDate time.Time) (bool, error) {
	tag, err := o.pool.Exec(ctx,
		`INSERT INTO orders (user_id, subscription_tier_id, stripe_session_id, status, order_date)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT ON CONSTRAINT orders_checkout_unique DO NOTHING`,
		userID, tierID, stripeSessionID, models.OrderStatusActive, orderDate)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CancelActiveByUser passe toutes les commandes actives d'un utilisateur à
// "cancelled". Le prédicat composé (user_id ET status actif) est exécuté en
// une seule instruction : zéro ligne affectée est un succès, pas une erreur.
func (o *Orders) CancelActiveByUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := o.pool.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = now()
		 WHERE user_id = $2 AND status = $3`,
		models.OrderStatusCancelled, userID, models.OrderStatusActive)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (o *Orders) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	row := o.pool.QueryRow(ctx,
		`SELECT id, user_id, subscription_tier_id, stripe_session_id, status,
		        order_date, delivery_date, tracking_number, created_at, updated_at
		 FROM orders WHERE id = $1`, id)

	var ord models.Order
	err := row.Scan(&ord.ID, &ord.UserID, &ord.SubscriptionTierID, &ord.StripeSessionID,
		&ord.Status, &ord.OrderDate, &ord.DeliveryDate, &ord.TrackingNumber,
		&ord.CreatedAt, &ord.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

func (o *Orders) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	rows, err := o.pool.Query(ctx,
		`SELECT id, user_id, subscription_tier_id, stripe_session_id, status,
		        order_date, delivery_date, tracking_number, created_at, updated_at
		 FROM orders WHERE user_id = $1 ORDER BY order_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var ord models.Order
		if err := rows.Scan(&ord.ID, &ord.UserID, &ord.SubscriptionTierID, &ord.StripeSessionID,
			&ord.Status, &ord.OrderDate, &ord.DeliveryDate, &ord.TrackingNumber,
			&ord.CreatedAt, &ord.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}
