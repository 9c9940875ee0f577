package commerce

import (
	"context"
	"errors"
	"fmt"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/store"
)

// Container détient l'état commerce d'un utilisateur : panier, wishlist,
// session et brouillon de profil. Chaque mutation est immédiatement
// synchronisée dans le store : l'état en mémoire n'est jamais en avance
// sur l'état persisté quand l'opération a réussi.
//
// Pas d'états dérivés stockés : "connecté" = session non nil,
// "panier vide" = len(cart) == 0.
type Container struct {
	store  store.Store
	userID string

	cart     []models.CartLine
	wishlist []models.WishlistEntry
	session  *models.Session
	userInfo models.UserInfo
}

func cartKey(userID string) string     { return "cart:" + userID }
func wishlistKey(userID string) string { return "wishlist:" + userID }
func sessionKey(userID string) string  { return "session:" + userID }
func userInfoKey(userID string) string { return "userinfo:" + userID }

// NewContainer recharge l'état persisté de l'utilisateur.
// Une clé absente = état vide (premier passage) ; toute autre erreur
// du store est remontée telle quelle (persistance indisponible).
func NewContainer(ctx context.Context, s store.Store, userID string) (*Container, error) {
	c := &Container{store: s, userID: userID}

	if err := store.GetJSON(ctx, s, cartKey(userID), &c.cart); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("chargement panier: %w", err)
	}
	if err := store.GetJSON(ctx, s, wishlistKey(userID), &c.wishlist); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("chargement wishlist: %w", err)
	}
	var sess models.Session
	err := store.GetJSON(ctx, s, sessionKey(userID), &sess)
	if err == nil {
		c.session = &sess
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("chargement session: %w", err)
	}
	if err := store.GetJSON(ctx, s, userInfoKey(userID), &c.userInfo); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("chargement profil: %w", err)
	}

	return c, nil
}

// --- Panier ---

// AddToCart incrémente la quantité si le produit est déjà dans le panier,
// sinon ajoute une nouvelle ligne (quantité 1) avec snapshot du produit.
// Toujours un succès côté métier ; seule la persistance peut échouer.
func (c *Container) AddToCart(ctx context.Context, p models.Product) error {
	found := false
	for i := range c.cart {
		if c.cart[i].ProductID == p.ID {
			c.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.cart = append(c.cart, models.CartLine{
			ProductID:     p.ID,
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Image:         p.Image,
			Quantity:      1,
		})
	}
	return c.saveCart(ctx)
}

// RemoveFromCart retire la ligne correspondante ; no-op si absente
func (c *Container) RemoveFromCart(ctx context.Context, productID string) error {
	newCart := make([]models.CartLine, 0, len(c.cart))
	for _, line := range c.cart {
		if line.ProductID != productID {
			newCart = append(newCart, line)
		}
	}
	c.cart = newCart
	return c.saveCart(ctx)
}

// UpdateQuantity remplace la quantité d'une ligne.
// Quantité 0 = suppression (une ligne n'est jamais persistée à 0).
// Pas de borne haute ici : le plafonnement au stock reste à l'appelant.
func (c *Container) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity == 0 {
		return c.RemoveFromCart(ctx, productID)
	}
	for i := range c.cart {
		if c.cart[i].ProductID == productID {
			c.cart[i].Quantity = quantity
			break
		}
	}
	return c.saveCart(ctx)
}

// ClearCart vide le panier (utilisé après une commande réussie)
func (c *Container) ClearCart(ctx context.Context) error {
	c.cart = nil
	return c.saveCart(ctx)
}

// Cart renvoie une copie des lignes du panier
func (c *Container) Cart() []models.CartLine {
	out := make([]models.CartLine, len(c.cart))
	copy(out, c.cart)
	return out
}

// TotalItems est la somme des quantités. Lecture pure, rien n'est persisté.
func (c *Container) TotalItems() int {
	total := 0
	for _, line := range c.cart {
		total += line.Quantity
	}
	return total
}

// TotalPrice est la somme prix × quantité. Lecture pure.
func (c *Container) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.cart {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (c *Container) saveCart(ctx context.Context) error {
	if c.cart == nil {
		c.cart = []models.CartLine{}
	}
	return store.SetJSON(ctx, c.store, cartKey(c.userID), c.cart)
}

// --- Wishlist ---

// AddToWishlist est idempotent : un produit déjà présent n'est pas dupliqué
func (c *Container) AddToWishlist(ctx context.Context, p models.Product) error {
	if c.IsInWishlist(p.ID) {
		return nil
	}
	c.wishlist = append(c.wishlist, models.WishlistEntry{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
	})
	return c.saveWishlist(ctx)
}

func (c *Container) RemoveFromWishlist(ctx context.Context, productID string) error {
	newWishlist := make([]models.WishlistEntry, 0, len(c.wishlist))
	for _, entry := range c.wishlist {
		if entry.ProductID != productID {
			newWishlist = append(newWishlist, entry)
		}
	}
	c.wishlist = newWishlist
	return c.saveWishlist(ctx)
}

func (c *Container) IsInWishlist(productID string) bool {
	for _, entry := range c.wishlist {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}

func (c *Container) Wishlist() []models.WishlistEntry {
	out := make([]models.WishlistEntry, len(c.wishlist))
	copy(out, c.wishlist)
	return out
}

func (c *Container) saveWishlist(ctx context.Context) error {
	if c.wishlist == nil {
		c.wishlist = []models.WishlistEntry{}
	}
	return store.SetJSON(ctx, c.store, wishlistKey(c.userID), c.wishlist)
}

// --- Session ---

func (c *Container) Session() *models.Session {
	return c.session
}

// SetUser enregistre la session active (une seule par utilisateur)
func (c *Container) SetUser(ctx context.Context, sess models.Session) error {
	c.session = &sess
	return store.SetJSON(ctx, c.store, sessionKey(c.userID), sess)
}

// Logout supprime uniquement la clé de session : le panier et la wishlist
// survivent à la déconnexion
func (c *Container) Logout(ctx context.Context) error {
	c.session = nil
	return c.store.Remove(ctx, sessionKey(c.userID))
}

// --- Brouillon de profil ---

func (c *Container) UserInfo() models.UserInfo {
	return c.userInfo
}

// SetUserInfo remplace le brouillon en entier ; la fusion éventuelle
// de champs est la responsabilité de l'appelant
func (c *Container) SetUserInfo(ctx context.Context, info models.UserInfo) error {
	c.userInfo = info
	return store.SetJSON(ctx, c.store, userInfoKey(c.userID), info)
}
