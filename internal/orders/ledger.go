package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/pricing"
	"shophub_back_end/internal/store"
)

// ErrNotFound : commande inexistante (ou appartenant à un autre utilisateur)
var ErrNotFound = errors.New("commande introuvable")

// Ledger est le registre append-only des commandes d'un utilisateur,
// trié de la plus récente à la plus ancienne. Une commande ajoutée
// n'est jamais modifiée ni supprimée.
type Ledger struct {
	store  store.Store
	userID string
}

func NewLedger(s store.Store, userID string) *Ledger {
	return &Ledger{store: s, userID: userID}
}

func ordersKey(userID string) string { return "orders:" + userID }

// PlaceOrder crée la commande et l'ajoute en tête du registre.
// L'identifiant est dérivé de l'horodatage de création (ORD-<millis>).
// Le statut dépend uniquement du mode de paiement : paiement à la
// livraison → "Processing", tout le reste → "Confirmed".
func (l *Ledger) PlaceOrder(ctx context.Context, items []models.CartLine, bd pricing.Breakdown,
	paymentMethod, shippingMethod string, addr models.ShippingAddress) (models.Order, error) {

	now := time.Now()

	status := models.StatusConfirmed
	if paymentMethod == models.PaymentCashOnDelivery {
		status = models.StatusProcessing
	}

	snapshot := make([]models.CartLine, len(items))
	copy(snapshot, items)

	order := models.Order{
		ID:              fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Items:           snapshot,
		Subtotal:        bd.Subtotal,
		Shipping:        bd.Shipping,
		Tax:             bd.Tax,
		Total:           bd.Total,
		PaymentMethod:   paymentMethod,
		ShippingMethod:  shippingMethod,
		ShippingAddress: addr,
		Status:          status,
		Date:            now.Format("2006-01-02"),
	}

	existing, err := l.List(ctx)
	if err != nil {
		return models.Order{}, err
	}

	// Plus récente en premier
	all := append([]models.Order{order}, existing...)
	if err := store.SetJSON(ctx, l.store, ordersKey(l.userID), all); err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// List renvoie tout le registre, de la plus récente à la plus ancienne
func (l *Ledger) List(ctx context.Context) ([]models.Order, error) {
	var all []models.Order
	err := store.GetJSON(ctx, l.store, ordersKey(l.userID), &all)
	if errors.Is(err, store.ErrNotFound) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture commandes: %w", err)
	}
	return all, nil
}

// Get renvoie une commande par identifiant
func (l *Ledger) Get(ctx context.Context, orderID string) (models.Order, error) {
	all, err := l.List(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range all {
		if o.ID == orderID {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}
