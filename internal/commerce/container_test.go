package commerce

import (
	"context"
	"testing"
	"time"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) (*Container, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	c, err := NewContainer(context.Background(), s, "u1")
	require.NoError(t, err)
	return c, s
}

func produit(id string, price float64) models.Product {
	return models.Product{ID: id, Name: "Produit " + id, Price: price, Image: "/img/" + id + ".jpg"}
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	p := produit("p1", 100)
	require.NoError(t, c.AddToCart(ctx, p))
	require.NoError(t, c.AddToCart(ctx, p))
	require.NoError(t, c.AddToCart(ctx, p))

	cart := c.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ProductID)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestAddToCartSnapshotsProduct(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, models.Product{
		ID: "p1", Name: "Casque", Price: 1299, OriginalPrice: 1999, Image: "/img/p1.jpg",
	}))

	line := c.Cart()[0]
	assert.Equal(t, "Casque", line.Name)
	assert.Equal(t, 1299.0, line.Price)
	assert.Equal(t, 1999.0, line.OriginalPrice)
	assert.Equal(t, "/img/p1.jpg", line.Image)
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, produit("p1", 100)))
	require.NoError(t, c.RemoveFromCart(ctx, "inexistant"))

	assert.Len(t, c.Cart(), 1)
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	viaUpdate, _ := newTestContainer(t)
	require.NoError(t, viaUpdate.AddToCart(ctx, produit("p1", 100)))
	require.NoError(t, viaUpdate.AddToCart(ctx, produit("p2", 200)))
	require.NoError(t, viaUpdate.UpdateQuantity(ctx, "p1", 0))

	viaRemove, _ := newTestContainer(t)
	require.NoError(t, viaRemove.AddToCart(ctx, produit("p1", 100)))
	require.NoError(t, viaRemove.AddToCart(ctx, produit("p2", 200)))
	require.NoError(t, viaRemove.RemoveFromCart(ctx, "p1"))

	assert.Equal(t, viaRemove.Cart(), viaUpdate.Cart())
}

func TestUpdateQuantityReplaces(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, produit("p1", 100)))
	require.NoError(t, c.UpdateQuantity(ctx, "p1", 7))

	assert.Equal(t, 7, c.Cart()[0].Quantity)
	assert.Equal(t, 7, c.TotalItems())
}

func TestTotals(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, produit("p1", 100)))
	require.NoError(t, c.AddToCart(ctx, produit("p1", 100)))
	require.NoError(t, c.AddToCart(ctx, produit("p2", 250)))

	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, 450.0, c.TotalPrice())
}

func TestClearCart(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, produit("p1", 100)))
	require.NoError(t, c.AddToCart(ctx, produit("p2", 200)))
	require.NoError(t, c.ClearCart(ctx))

	assert.Empty(t, c.Cart())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	p := produit("p1", 100)
	require.NoError(t, c.AddToWishlist(ctx, p))
	require.NoError(t, c.AddToWishlist(ctx, p))

	assert.Len(t, c.Wishlist(), 1)
	assert.True(t, c.IsInWishlist("p1"))
	assert.False(t, c.IsInWishlist("p2"))
}

func TestWishlistRemove(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToWishlist(ctx, produit("p1", 100)))
	require.NoError(t, c.RemoveFromWishlist(ctx, "p1"))

	assert.Empty(t, c.Wishlist())
	assert.False(t, c.IsInWishlist("p1"))
}

func TestStatePersistsAcrossContainers(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	first, err := NewContainer(ctx, s, "u1")
	require.NoError(t, err)
	require.NoError(t, first.AddToCart(ctx, produit("p1", 100)))
	require.NoError(t, first.AddToWishlist(ctx, produit("p2", 200)))
	require.NoError(t, first.SetUserInfo(ctx, models.UserInfo{FirstName: "Asha", City: "Mumbai"}))

	// Un nouveau container sur le même store voit l'état persisté
	second, err := NewContainer(ctx, s, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.Cart(), second.Cart())
	assert.True(t, second.IsInWishlist("p2"))
	assert.Equal(t, "Asha", second.UserInfo().FirstName)
	assert.Equal(t, "Mumbai", second.UserInfo().City)
}

func TestStateIsScopedPerUser(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	u1, err := NewContainer(ctx, s, "u1")
	require.NoError(t, err)
	require.NoError(t, u1.AddToCart(ctx, produit("p1", 100)))

	u2, err := NewContainer(ctx, s, "u2")
	require.NoError(t, err)
	assert.Empty(t, u2.Cart())
}

func TestLogoutKeepsCartAndWishlist(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	c, err := NewContainer(ctx, s, "u1")
	require.NoError(t, err)

	require.NoError(t, c.SetUser(ctx, models.Session{
		UserID: "u1", Name: "Asha Rao", Email: "asha@example.com", LoginTime: time.Now(),
	}))
	require.NoError(t, c.AddToCart(ctx, produit("p1", 100)))
	require.NoError(t, c.AddToWishlist(ctx, produit("p2", 200)))
	require.NotNil(t, c.Session())

	require.NoError(t, c.Logout(ctx))
	assert.Nil(t, c.Session())

	// Après rechargement : plus de session, mais panier et wishlist intacts
	reloaded, err := NewContainer(ctx, s, "u1")
	require.NoError(t, err)
	assert.Nil(t, reloaded.Session())
	assert.Len(t, reloaded.Cart(), 1)
	assert.True(t, reloaded.IsInWishlist("p2"))
}

func TestSetUserInfoReplacesEntirely(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.SetUserInfo(ctx, models.UserInfo{FirstName: "Asha", City: "Mumbai"}))
	require.NoError(t, c.SetUserInfo(ctx, models.UserInfo{FirstName: "Ravi"}))

	// Remplacement, pas fusion : la ville précédente a disparu
	assert.Equal(t, "Ravi", c.UserInfo().FirstName)
	assert.Empty(t, c.UserInfo().City)
}
