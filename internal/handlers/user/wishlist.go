package user

import (
	"log"
	"net/http"

	"shophub_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GET /api/wishlist
func GetWishlist(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": container.Wishlist()})
}

// POST /api/wishlist/add : idempotent, un doublon n'est pas une erreur
func AddToWishlist(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}

	var input struct {
		Product models.Product `json:"product" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := container.AddToWishlist(c.Request.Context(), input.Product); err != nil {
		log.Printf("❌ Erreur ajout wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	log.Printf("⭐ Produit %s ajouté à la wishlist de %s", input.Product.ID, c.GetString("user_id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté à la wishlist",
		"items":   container.Wishlist(),
	})
}

// GET /api/wishlist/:productId
func IsInWishlist(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"inWishlist": container.IsInWishlist(c.Param("productId"))})
}

// DELETE /api/wishlist/:productId
func RemoveFromWishlist(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}

	if err := container.RemoveFromWishlist(c.Request.Context(), c.Param("productId")); err != nil {
		log.Printf("❌ Erreur suppression wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit retiré de la wishlist",
		"items":   container.Wishlist(),
	})
}
