package models

// Product est l'instantané produit envoyé par le front au moment de l'ajout
// (pas de catalogue côté serveur : les prix sont capturés à l'ajout)
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Image         string  `json:"image,omitempty"`
	Stock         int     `json:"stock,omitempty"`
}
