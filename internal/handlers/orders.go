package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brewhaus_back_end/internal/models"
	"brewhaus_back_end/internal/store"
)

// GetOrder renvoie une commande par id. Une commande d'un autre utilisateur
// est indistinguable d'une commande absente.
func (h *Handler) GetOrder(c *gin.Context) {
	user, ok := authUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	order, err := h.orders.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) || (err == nil && order.UserID != user.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrders renvoie les commandes de l'utilisateur authentifié.
func (h *Handler) ListOrders(c *gin.Context) {
	user, ok := authUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, orders)
}
