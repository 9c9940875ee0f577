package pricing

import (
	"math"
	"os"
	"strconv"

	"shophub_back_end/internal/models"
)

// Valeurs par défaut (INR, unités entières, 18% GST)
const (
	DefaultFreeThreshold = 4000
	DefaultStandardFee   = 829
	DefaultExpressFee    = 1329
	DefaultTaxRate       = 0.18
)

// Config regroupe les constantes tarifaires. Une seule source de vérité :
// le checkout, le récap panier et les options de livraison passent tous ici.
type Config struct {
	FreeShippingThreshold float64
	StandardFee           float64
	ExpressFee            float64
	TaxRate               float64
}

func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: DefaultFreeThreshold,
		StandardFee:           DefaultStandardFee,
		ExpressFee:            DefaultExpressFee,
		TaxRate:               DefaultTaxRate,
	}
}

// ConfigFromEnv charge les constantes depuis l'environnement,
// avec les valeurs par défaut si absentes
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.FreeShippingThreshold = envFloat("PRICING_FREE_SHIPPING_THRESHOLD", cfg.FreeShippingThreshold)
	cfg.StandardFee = envFloat("PRICING_STANDARD_FEE", cfg.StandardFee)
	cfg.ExpressFee = envFloat("PRICING_EXPRESS_FEE", cfg.ExpressFee)
	cfg.TaxRate = envFloat("PRICING_TAX_RATE", cfg.TaxRate)
	return cfg
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// Breakdown est le détail de prix d'un checkout
type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	// Le paiement à la livraison ne coûte rien : zéro explicite
	CODFee float64 `json:"codFee"`
	Total  float64 `json:"total"`
}

// Calculate est une fonction pure : (sous-total, livraison, paiement) → détail.
// Express = tarif fixe quel que soit le montant ; standard = gratuit
// au-dessus du seuil, sinon tarif fixe. Taxe arrondie à l'unité entière.
func (c Config) Calculate(subtotal float64, shippingMethod, paymentMethod string) Breakdown {
	shipping := c.StandardFee
	if shippingMethod == models.ShippingExpress {
		shipping = c.ExpressFee
	} else if subtotal > c.FreeShippingThreshold {
		shipping = 0
	}

	tax := math.Round(subtotal * c.TaxRate)

	return Breakdown{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		CODFee:   0,
		Total:    subtotal + shipping + tax,
	}
}
