package models

// Méthodes de paiement et de livraison acceptées au checkout
const (
	PaymentCard           = "card"
	PaymentCashOnDelivery = "cod"

	ShippingStandard = "standard"
	ShippingExpress  = "express"

	// Statuts attribués à la création (jamais modifiés ensuite)
	StatusProcessing = "Processing"
	StatusConfirmed  = "Confirmed"
)

type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// Order est immuable une fois ajoutée au registre
type Order struct {
	ID              string          `json:"id"`
	Items           []CartLine      `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingMethod  string          `json:"shippingMethod"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Status          string          `json:"status"`
	Date            string          `json:"date"`
}
