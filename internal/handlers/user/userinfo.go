package user

import (
	"log"
	"net/http"

	"shophub_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GET /api/users/me/info : brouillon de profil/livraison (prérempli au checkout)
func GetUserInfo(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, container.UserInfo())
}

// PUT /api/users/me/info : remplacement complet du brouillon, pas de fusion :
// le front envoie toujours le formulaire entier
func UpdateUserInfo(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}

	var info models.UserInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := container.SetUserInfo(c.Request.Context(), info); err != nil {
		log.Printf("❌ Erreur sauvegarde profil: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profil enregistré", "userInfo": info})
}
