package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"brewhaus_back_end/internal/database"
	"brewhaus_back_end/internal/models"
)

// GetPreferences renvoie les réponses au quiz de l'utilisateur (une ligne max).
func (h *Handler) GetPreferences(c *gin.Context) {
	user, ok := authUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	row := database.Postgres.QueryRow(c.Request.Context(),
		`SELECT id, user_id, COALESCE(grind_type, ''), COALESCE(roast_level, ''),
		        COALESCE(origin_preference, ''), COALESCE(blend_preference, ''),
		        created_at, updated_at
		 FROM coffee_preferences WHERE user_id = $1`, user.ID)

	var pref models.CoffeePreference
	err := row.Scan(&pref.ID, &pref.UserID, &pref.GrindType, &pref.RoastLevel,
		&pref.OriginPreference, &pref.BlendPreference, &pref.CreatedAt, &pref.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucune préférence enregistrée"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.JSON(http.StatusOK, pref)
}

// SavePreferences enregistre (ou remplace) les réponses au quiz.
func (h *Handler) SavePreferences(c *gin.Context) {
	user, ok := authUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var input struct {
		GrindType        string `json:"grindType"`
		RoastLevel       string `json:"roastLevel"`
		OriginPreference string `json:"originPreference"`
		BlendPreference  string `json:"blendPreference"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	_, err := database.Postgres.Exec(c.Request.Context(),
		`INSERT INTO coffee_preferences (user_id, grind_type, roast_level, origin_preference, blend_preference)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
		     grind_type = EXCLUDED.grind_type,
		     roast_level = EXCLUDED.roast_level,
		     origin_preference = EXCLUDED.origin_preference,
		     blend_preference = EXCLUDED.blend_preference,
		     updated_at = now()`,
		user.ID, input.GrindType, input.RoastLevel, input.OriginPreference, input.BlendPreference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true})
}
