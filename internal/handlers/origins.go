package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brewhaus_back_end/internal/database"
	"brewhaus_back_end/internal/models"
)

// ListOrigins renvoie les origines de café présentées par l'explorateur.
func (h *Handler) ListOrigins(c *gin.Context) {
	h.listOrigins(c, false)
}

// FeaturedOrigins renvoie uniquement l'origine mise en avant du moment.
func (h *Handler) FeaturedOrigins(c *gin.Context) {
	h.listOrigins(c, true)
}

func (h *Handler) listOrigins(c *gin.Context, featuredOnly bool) {
	query := `SELECT id, name, country, COALESCE(region, ''), COALESCE(description, ''),
	                 COALESCE(tasting_notes, '[]'), COALESCE(image_url, ''), COALESCE(featured, FALSE), created_at
	          FROM coffee_origins`
	if featuredOnly {
		query += ` WHERE featured`
	}
	query += ` ORDER BY name`

	rows, err := database.Postgres.Query(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	defer rows.Close()

	origins := []models.CoffeeOrigin{}
	for rows.Next() {
		var origin models.CoffeeOrigin
		if err := rows.Scan(&origin.ID, &origin.Name, &origin.Country, &origin.Region,
			&origin.Description, &origin.TastingNotes, &origin.ImageURL,
			&origin.Featured, &origin.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
			return
		}
		origins = append(origins, origin)
	}
	if rows.Err() != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.JSON(http.StatusOK, origins)
}
