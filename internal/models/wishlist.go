package models

// WishlistEntry est un produit sauvegardé pour plus tard : unique par
// productId, sans quantité
type WishlistEntry struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Image         string  `json:"image,omitempty"`
}
