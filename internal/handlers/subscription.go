package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"brewhaus_back_end/internal/cache"
	"brewhaus_back_end/internal/store"
)

// GetSubscriptionTiers renvoie le catalogue des formules (via cache Redis).
func (h *Handler) GetSubscriptionTiers(c *gin.Context) {
	tiers, err := cache.GetTiers(c.Request.Context(), h.tiers)
	if err != nil {
		log.Println("❌ Erreur lecture catalogue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue"})
		return
	}
	c.JSON(http.StatusOK, tiers)
}

// CreateSubscription démarre le checkout hébergé pour une formule. Aucun
// état local n'est créé ici : la commande naît au webhook, une fois le
// paiement confirmé.
func (h *Handler) CreateSubscription(c *gin.Context) {
	user, ok := authUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var req struct {
		TierID int64 `json:"tierId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	tier, err := h.tiers.GetByID(c.Request.Context(), req.TierID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Formule introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue"})
		return
	}

	checkoutURL, err := h.payments.CreateSubscriptionCheckout(c.Request.Context(), user, *tier)
	if err != nil {
		log.Printf("❌ Erreur Stripe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création paiement"})
		return
	}

	log.Printf("💳 Checkout créé : formule %q pour user %d", tier.Name, user.ID)
	c.JSON(http.StatusOK, gin.H{"checkoutUrl": checkoutURL})
}
