package user

import (
	"errors"
	"log"
	"net/http"

	"shophub_back_end/internal/auth"
	"shophub_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// PUT /api/users/me : mise à jour partielle du compte ;
// rafraîchit aussi la session persistée si l'utilisateur est connecté
func UpdateProfile(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}
	userID := c.GetString("user_id")

	var input struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	updated, err := credStore().UpdateProfile(c.Request.Context(), userID, auth.ProfileUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	})
	if errors.Is(err, auth.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("❌ Erreur mise à jour profil: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	if session := container.Session(); session != nil {
		refreshed := models.Session{
			UserID:    updated.ID,
			Name:      updated.DisplayName(),
			Email:     updated.Email,
			Phone:     updated.Phone,
			LoginTime: session.LoginTime,
		}
		if err := container.SetUser(c.Request.Context(), refreshed); err != nil {
			log.Printf("⚠️ Erreur rafraîchissement session: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Profil mis à jour avec succès",
		"userId":    updated.ID,
		"firstName": updated.FirstName,
		"lastName":  updated.LastName,
		"email":     updated.Email,
		"phone":     updated.Phone,
	})
}

// POST /api/users/me/deactivate : désactivation douce, les commandes restent
func DeactivateAccount(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}
	userID := c.GetString("user_id")

	var input struct {
		Password            string `json:"password" binding:"required"`
		ConfirmDeactivation bool   `json:"confirmDeactivation"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if !input.ConfirmDeactivation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vous devez confirmer la désactivation"})
		return
	}

	err := credStore().Deactivate(c.Request.Context(), userID, input.Password)
	switch {
	case errors.Is(err, auth.ErrWrongCurrentPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("❌ Erreur désactivation compte: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	// La session tombe avec le compte
	if err := container.Logout(c.Request.Context()); err != nil {
		log.Printf("⚠️ Erreur suppression session: %v", err)
	}

	log.Printf("🗑️ Compte désactivé: %s", userID)

	c.JSON(http.StatusOK, gin.H{"message": "Compte désactivé avec succès"})
}
