package user

import (
	"errors"
	"log"
	"net/http"

	"shophub_back_end/internal/database"
	"shophub_back_end/internal/orders"
	"shophub_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/orders : registre complet, plus récente en premier
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	ledger := orders.NewLedger(database.Store, userID)
	all, err := ledger.List(c.Request.Context())
	if err != nil {
		log.Printf("❌ Erreur lecture commandes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": all})
}

// GET /api/orders/:id : scopé à l'utilisateur connecté
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	ledger := orders.NewLedger(database.Store, userID)
	order, err := ledger.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, orders.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /api/orders/:id/qr : QR code PNG du numéro de commande
func GetOrderQR(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	ledger := orders.NewLedger(database.Store, userID)
	order, err := ledger.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, orders.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	png, err := utils.GenerateOrderQR(order.ID)
	if err != nil {
		log.Printf("❌ Erreur génération QR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
