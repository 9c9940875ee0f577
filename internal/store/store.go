package store

import (
	"context"
	"errors"
)

// ErrNotFound est renvoyé quand la clé n'existe pas dans le store
var ErrNotFound = errors.New("clé introuvable")

// Store est le contrat de persistance clé/valeur du backend.
// Toutes les données (panier, wishlist, session, commandes, utilisateurs)
// passent par cette interface : aucune autre base de données.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
