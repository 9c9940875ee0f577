package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON lit une clé et décode sa valeur JSON dans dest.
// Renvoie ErrNotFound si la clé n'existe pas.
func GetJSON(ctx context.Context, s Store, key string, dest interface{}) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("décodage JSON de %s: %w", key, err)
	}
	return nil
}

// SetJSON encode value en JSON et l'écrit sous key.
// L'aller-retour SetJSON/GetJSON doit redonner une valeur identique.
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encodage JSON de %s: %w", key, err)
	}
	return s.Set(ctx, key, string(data))
}
