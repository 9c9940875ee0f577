package pa

import (
	"net/http"
	"strconv"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
)

// GetShippingOptions retourne les options de livraison pour un montant
// de panier donné (query param cart_total)
func GetShippingOptions(c *gin.Context) {
	var cartTotal float64
	if total := c.Query("cart_total"); total != "" {
		if n, err := strconv.ParseFloat(total, 64); err == nil {
			cartTotal = n
		}
	}

	cfg := pricing.ConfigFromEnv()
	isFree := cartTotal > cfg.FreeShippingThreshold

	options := []models.ShippingOption{
		{
			ID:            models.ShippingStandard,
			Name:          "Livraison Standard",
			Description:   "Livraison en 5-7 jours ouvrés",
			Price:         cfg.StandardFee,
			EstimatedDays: 7,
		},
		{
			ID:            models.ShippingExpress,
			Name:          "Livraison Express",
			Description:   "Livraison en 2-3 jours ouvrés",
			Price:         cfg.ExpressFee,
			EstimatedDays: 3,
		},
	}

	// Au-dessus du seuil, la livraison standard est offerte (jamais l'express)
	if isFree {
		options[0].Price = 0
		options[0].Name = "Livraison Standard Gratuite"
	}

	c.JSON(http.StatusOK, models.ShippingCalculation{
		Options:       options,
		FreeThreshold: cfg.FreeShippingThreshold,
		CartTotal:     cartTotal,
		IsFree:        isFree,
	})
}

// GetCartSummary calcule le détail de prix pour l'écran de checkout,
// avec le même calculateur que la création de commande
func GetCartSummary(c *gin.Context) {
	subtotal, err := strconv.ParseFloat(c.Query("subtotal"), 64)
	if err != nil || subtotal < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sous-total invalide"})
		return
	}

	shippingMethod := c.DefaultQuery("shipping_method", models.ShippingStandard)
	paymentMethod := c.DefaultQuery("payment_method", models.PaymentCard)

	c.JSON(http.StatusOK, pricing.ConfigFromEnv().Calculate(subtotal, shippingMethod, paymentMethod))
}
