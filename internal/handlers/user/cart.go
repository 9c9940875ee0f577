package user

import (
	"log"
	"net/http"

	"shophub_back_end/internal/commerce"
	"shophub_back_end/internal/database"
	"shophub_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

func loadContainer(c *gin.Context) (*commerce.Container, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return nil, false
	}

	container, err := commerce.NewContainer(c.Request.Context(), database.Store, userID)
	if err != nil {
		log.Printf("❌ Erreur chargement état: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return nil, false
	}
	return container, true
}

func cartResponse(container *commerce.Container) gin.H {
	return gin.H{
		"items": container.Cart(),
		"count": container.TotalItems(),
		"total": container.TotalPrice(),
	}
}

// GET /api/cart
func GetCart(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartResponse(container))
}

// POST /api/cart/add
// Le front envoie le snapshot produit ; quantité optionnelle (défaut 1),
// plafonnée au stock annoncé : chaque unité passe par l'incrément du container
func AddToCart(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}

	var input struct {
		Product  models.Product `json:"product" binding:"required"`
		Quantity int            `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Product.ID == "" || input.Product.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide"})
		return
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	if input.Product.Stock > 0 && quantity > input.Product.Stock {
		quantity = input.Product.Stock
	}

	for i := 0; i < quantity; i++ {
		if err := container.AddToCart(c.Request.Context(), input.Product); err != nil {
			log.Printf("❌ Erreur ajout panier: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
			return
		}
	}

	database.PublishCartEvent(c.Request.Context(), c.GetString("user_id"), "updated")

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   container.Cart(),
		"count":   container.TotalItems(),
		"total":   container.TotalPrice(),
	})
}

// PUT /api/cart/update : quantité 0 = suppression de la ligne
func UpdateQuantity(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	if err := container.UpdateQuantity(c.Request.Context(), input.ProductID, input.Quantity); err != nil {
		log.Printf("❌ Erreur mise à jour quantité: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	database.PublishCartEvent(c.Request.Context(), c.GetString("user_id"), "updated")

	c.JSON(http.StatusOK, cartResponse(container))
}

// DELETE /api/cart/:productId : no-op si la ligne n'existe pas
func RemoveFromCart(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}

	if err := container.RemoveFromCart(c.Request.Context(), c.Param("productId")); err != nil {
		log.Printf("❌ Erreur suppression panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	database.PublishCartEvent(c.Request.Context(), c.GetString("user_id"), "updated")

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   container.Cart(),
	})
}

// DELETE /api/cart : vide complètement le panier
func ClearCart(c *gin.Context) {
	container, ok := loadContainer(c)
	if !ok {
		return
	}

	if err := container.ClearCart(c.Request.Context()); err != nil {
		log.Printf("❌ Erreur vidage panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	database.PublishCartEvent(c.Request.Context(), c.GetString("user_id"), "cleared")

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
