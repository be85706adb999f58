package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brewhaus_back_end/internal/models"
)

// Tiers est le dépôt (lecture seule côté checkout) du catalogue des formules.
type Tiers struct {
	pool *pgxpool.Pool
}

func NewTiers(pool *pgxpool.Pool) *Tiers {
	return &Tiers{pool: pool}
}

func (t *Tiers) List(ctx context.Context) ([]models.SubscriptionTier, error) {
	rows, err := t.pool.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), monthly_amount::text, coffee_amount,
		        features, COALESCE(stripe_product_id, ''), created_at, updated_at
		 FROM subscription_tiers ORDER BY monthly_amount`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []models.SubscriptionTier
	for rows.Next() {
		var tier models.SubscriptionTier
		if err := rows.Scan(&tier.ID, &tier.Name, &tier.Description, &tier.MonthlyAmount,
			&tier.CoffeeAmount, &tier.Features, &tier.StripeProductID,
			&tier.CreatedAt, &tier.UpdatedAt); err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, rows.Err()
}

func (t *Tiers) GetByID(ctx context.Context, id int64) (*models.SubscriptionTier, error) {
	row := t.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), monthly_amount::text, coffee_amount,
		        features, COALESCE(stripe_product_id, ''), created_at, updated_at
		 FROM subscription_tiers WHERE id = $1`, id)

	var tier models.SubscriptionTier
	err := row.Scan(&tier.ID, &tier.Name, &tier.Description, &tier.MonthlyAmount,
		&tier.CoffeeAmount, &tier.Features, &tier.StripeProductID,
		&tier.CreatedAt, &tier.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tier, nil
}
