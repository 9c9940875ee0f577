package user

import (
	"errors"
	"log"
	"net/http"
	"time"

	"shophub_back_end/internal/auth"
	"shophub_back_end/internal/commerce"
	"shophub_back_end/internal/database"
	"shophub_back_end/internal/models"
	"shophub_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// credStore est le fournisseur d'identité du backend. Implémentation
// locale au-dessus du store ; remplaçable via l'interface auth.CredentialStore.
func credStore() auth.CredentialStore {
	return auth.NewLocalCredentialStore(database.Store)
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var input struct {
		FirstName       string `json:"firstName" binding:"required"`
		LastName        string `json:"lastName" binding:"required"`
		Email           string `json:"email" binding:"required,email"`
		Phone           string `json:"phone"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le mot de passe doit contenir au moins 6 caractères"})
		return
	}
	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": auth.ErrPasswordMismatch.Error()})
		return
	}

	newUser, err := credStore().Register(c.Request.Context(), auth.RegisterInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  input.Password,
	})
	if errors.Is(err, auth.ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("❌ Erreur création utilisateur: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	// Connecte directement le nouvel inscrit, comme le front le fait
	session := models.Session{
		UserID:    newUser.ID,
		Name:      newUser.DisplayName(),
		Email:     newUser.Email,
		Phone:     newUser.Phone,
		LoginTime: time.Now(),
	}
	container, err := commerce.NewContainer(c.Request.Context(), database.Store, newUser.ID)
	if err == nil {
		err = container.SetUser(c.Request.Context(), session)
	}
	if err != nil {
		log.Printf("❌ Erreur enregistrement session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	log.Printf("🆕 Compte créé: %s", newUser.Email)

	c.JSON(http.StatusCreated, gin.H{
		"token":     utils.GenerateJWT(newUser.ID, newUser.Email, newUser.DisplayName()),
		"userId":    newUser.ID,
		"email":     newUser.Email,
		"name":      newUser.DisplayName(),
		"firstName": newUser.FirstName,
		"lastName":  newUser.LastName,
		"phone":     newUser.Phone,
	})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := credStore().Login(c.Request.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	case errors.Is(err, auth.ErrAccountDeactivated):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("❌ Erreur login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	container, err := commerce.NewContainer(c.Request.Context(), database.Store, session.UserID)
	if err == nil {
		err = container.SetUser(c.Request.Context(), session)
	}
	if err != nil {
		log.Printf("❌ Erreur enregistrement session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     utils.GenerateJWT(session.UserID, session.Email, session.Name),
		"userId":    session.UserID,
		"email":     session.Email,
		"name":      session.Name,
		"phone":     session.Phone,
		"loginTime": session.LoginTime,
	})
}

// POST /api/auth/logout : supprime la session, conserve panier et wishlist
func Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	container, err := commerce.NewContainer(c.Request.Context(), database.Store, userID)
	if err == nil {
		err = container.Logout(c.Request.Context())
	}
	if err != nil {
		log.Printf("❌ Erreur logout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté avec succès"})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	container, err := commerce.NewContainer(c.Request.Context(), database.Store, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	session := container.Session()
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Aucune session active"})
		return
	}

	c.JSON(http.StatusOK, session)
}
