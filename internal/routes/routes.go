package routes

import (
	pa "shophub_back_end/internal/handlers/payement"
	"shophub_back_end/internal/handlers/user"
	"shophub_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Auth publique
	api.POST("/auth/register", user.Register)
	api.POST("/auth/login", user.Login)

	// Tout le reste exige un token
	authed := api.Group("")
	authed.Use(middleware.AuthRequired())

	authed.POST("/auth/logout", user.Logout)
	authed.GET("/auth/me", user.Me)
	authed.POST("/auth/change-password", user.ChangePassword)

	// Panier
	authed.GET("/cart", user.GetCart)
	authed.POST("/cart/add", user.AddToCart)
	authed.PUT("/cart/update", user.UpdateQuantity)
	authed.DELETE("/cart/clear", user.ClearCart)
	authed.DELETE("/cart/:productId", user.RemoveFromCart)
	authed.GET("/cart/ws", user.CartWebSocket)

	// Wishlist
	authed.GET("/wishlist", user.GetWishlist)
	authed.POST("/wishlist/add", user.AddToWishlist)
	authed.GET("/wishlist/:productId", user.IsInWishlist)
	authed.DELETE("/wishlist/:productId", user.RemoveFromWishlist)

	// Profil
	authed.PUT("/users/me", user.UpdateProfile)
	authed.POST("/users/me/deactivate", user.DeactivateAccount)
	authed.GET("/users/me/info", user.GetUserInfo)
	authed.PUT("/users/me/info", user.UpdateUserInfo)

	// Commandes
	authed.GET("/orders", user.GetMyOrders)
	authed.GET("/orders/:id", user.GetOrderByID)
	authed.GET("/orders/:id/qr", user.GetOrderQR)

	// Checkout
	authed.POST("/checkout", pa.Checkout)
	authed.GET("/shipping/options", pa.GetShippingOptions)
	authed.GET("/checkout/summary", pa.GetCartSummary)
}
