package cache

import (
	"context"
	"encoding/json"
	"time"

	"brewhaus_back_end/internal/database"
	"brewhaus_back_end/internal/models"
)

const (
	TiersCacheTTL = 10 * time.Minute

	tiersKey = "subscription_tiers"
)

// TierLister fournit la liste des formules depuis le stockage primaire.
type TierLister interface {
	List(ctx context.Context) ([]models.SubscriptionTier, error)
}

// GetTiers récupère le catalogue depuis Redis, ou depuis Postgres avec mise
// en cache. Le catalogue change rarement : un TTL court suffit à absorber
// les éditions administratives.
func GetTiers(ctx context.Context, lister TierLister) ([]models.SubscriptionTier, error) {
	if database.Redis == nil {
		return lister.List(ctx)
	}

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, tiersKey).Result()
	if err == nil {
		var tiers []models.SubscriptionTier
		if json.Unmarshal([]byte(data), &tiers) == nil {
			return tiers, nil
		}
	}

	// 2. Récupérer de Postgres
	tiers, err := lister.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Mettre en cache
	if jsonData, err := json.Marshal(tiers); err == nil {
		database.Redis.Set(ctx, tiersKey, jsonData, TiersCacheTTL)
	}

	return tiers, nil
}
