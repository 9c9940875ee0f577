package models

// CartLine est une ligne du panier : un produit unique + une quantité ≥ 1.
// Les champs produit sont figés au moment de l'ajout (snapshot).
type CartLine struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Image         string  `json:"image,omitempty"`
	Quantity      int     `json:"quantity"`
}
