package pa

import (
	"context"
	"log"
	"net/http"
	"time"

	"shophub_back_end/internal/commerce"
	"shophub_back_end/internal/database"
	"shophub_back_end/internal/models"
	"shophub_back_end/internal/orders"
	"shophub_back_end/internal/pricing"
	"shophub_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// Checkout transforme le panier en commande : sauvegarde le brouillon
// d'adresse, calcule le prix, ajoute la commande au registre puis vide
// le panier. Au plus un checkout en vol par utilisateur (verrou Redis).
func Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var req struct {
		FirstName      string `json:"firstName" binding:"required"`
		LastName       string `json:"lastName" binding:"required"`
		Email          string `json:"email" binding:"required,email"`
		Phone          string `json:"phone"`
		Address        string `json:"address" binding:"required"`
		City           string `json:"city" binding:"required"`
		State          string `json:"state" binding:"required"`
		ZipCode        string `json:"zipCode" binding:"required"`
		PaymentMethod  string `json:"paymentMethod" binding:"required"`
		ShippingMethod string `json:"shippingMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if req.PaymentMethod != models.PaymentCard && req.PaymentMethod != models.PaymentCashOnDelivery {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mode de paiement non supporté"})
		return
	}
	if req.ShippingMethod != models.ShippingStandard && req.ShippingMethod != models.ShippingExpress {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mode de livraison non supporté"})
		return
	}

	ctx := c.Request.Context()

	// Anti double-soumission : un seul checkout à la fois par utilisateur
	if database.Redis != nil {
		lockKey := "checkout_lock:" + userID
		ok, err := database.Redis.SetNX(ctx, lockKey, "1", 10*time.Second).Result()
		if err != nil {
			log.Printf("❌ Erreur verrou checkout: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
			return
		}
		if !ok {
			c.JSON(http.StatusConflict, gin.H{"error": "Une commande est déjà en cours de traitement"})
			return
		}
		defer database.Redis.Del(context.Background(), lockKey)
	}

	container, err := commerce.NewContainer(ctx, database.Store, userID)
	if err != nil {
		log.Printf("❌ Erreur chargement état: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	cart := container.Cart()
	if len(cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	// Le formulaire soumis devient le nouveau brouillon de profil
	info := models.UserInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
	}
	if err := container.SetUserInfo(ctx, info); err != nil {
		log.Printf("❌ Erreur sauvegarde brouillon: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	breakdown := pricing.ConfigFromEnv().Calculate(container.TotalPrice(), req.ShippingMethod, req.PaymentMethod)

	address := models.ShippingAddress{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
	}

	ledger := orders.NewLedger(database.Store, userID)
	order, err := ledger.PlaceOrder(ctx, cart, breakdown, req.PaymentMethod, req.ShippingMethod, address)
	if err != nil {
		log.Printf("❌ Erreur création commande: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Persistance indisponible"})
		return
	}

	if err := container.ClearCart(ctx); err != nil {
		log.Printf("⚠️ Commande %s créée mais panier non vidé: %v", order.ID, err)
	}
	database.PublishCartEvent(ctx, userID, "cleared")

	// Confirmation best-effort, jamais bloquante
	recipient := req.Email
	if recipient == "" {
		recipient = email
	}
	go func(to string, o models.Order) {
		if err := utils.SendOrderConfirmationEmail(to, o); err != nil {
			log.Printf("❌ Erreur envoi confirmation %s: %v", o.ID, err)
		}
	}(recipient, order)

	log.Printf("🛒 Commande %s créée pour %s (total ₹%.0f, %s)", order.ID, userID, order.Total, order.Status)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande créée avec succès",
		"order":   order,
	})
}
