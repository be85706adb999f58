package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"brewhaus_back_end/internal/stripehook"
)

// StripeWebhook reçoit les notifications asynchrones du fournisseur de
// paiement. Toute réponse non-2xx provoque une relivraison côté Stripe.
func (h *Handler) StripeWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := c.GetRawData()
	if err != nil {
		log.Println("❌ Lecture payload échouée:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Échec lecture body"})
		return
	}

	err = h.hook.Process(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	switch {
	case errors.Is(err, stripehook.ErrSignature):
		log.Println("❌ Signature Stripe invalide")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature invalide"})
	case errors.Is(err, stripehook.ErrBadPayload):
		log.Println("❌ JSON invalide:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON invalide"})
	case err != nil:
		// Erreur de stockage : on laisse Stripe relivrer le même événement,
		// les transitions sont rejouables sans effet.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Traitement échoué"})
	default:
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
