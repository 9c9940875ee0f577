package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cart:u1", `[{"productId":"p1","quantity":2}]`))

	val, err := s.Get(ctx, "cart:u1")
	require.NoError(t, err)
	assert.Equal(t, `[{"productId":"p1","quantity":2}]`, val)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "inconnue")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRemove(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "session:u1", "x"))
	require.NoError(t, s.Remove(ctx, "session:u1"))

	_, err := s.Get(ctx, "session:u1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Supprimer une clé absente n'est pas une erreur
	assert.NoError(t, s.Remove(ctx, "session:u1"))
}

func TestJSONRoundTripIdentity(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	type record struct {
		ID    string   `json:"id"`
		Total float64  `json:"total"`
		Tags  []string `json:"tags"`
	}

	original := record{ID: "ORD-1", Total: 4369, Tags: []string{"a", "b"}}
	require.NoError(t, SetJSON(ctx, s, "orders:u1", original))

	var decoded record
	require.NoError(t, GetJSON(ctx, s, "orders:u1", &decoded))
	assert.Equal(t, original, decoded)
}

func TestGetJSONMissingKey(t *testing.T) {
	s := NewMemoryStore()

	var dest []string
	err := GetJSON(context.Background(), s, "absente", &dest)
	assert.ErrorIs(t, err, ErrNotFound)
}
