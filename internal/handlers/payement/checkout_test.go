package pa

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shophub_back_end/internal/commerce"
	"shophub_back_end/internal/database"
	"shophub_back_end/internal/models"
	"shophub_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database.Store = store.NewMemoryStore()
	database.Redis = nil

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Set("email", "asha@example.com")
	})
	r.POST("/api/checkout", Checkout)
	r.GET("/api/shipping/options", GetShippingOptions)
	r.GET("/api/checkout/summary", GetCartSummary)
	return r
}

func fillCart(t *testing.T, subtotal float64) {
	t.Helper()
	container, err := commerce.NewContainer(context.Background(), database.Store, "u1")
	require.NoError(t, err)
	require.NoError(t, container.AddToCart(context.Background(), models.Product{
		ID: "p1", Name: "Casque", Price: subtotal,
	}))
}

func checkoutBody(payment, shipping string) gin.H {
	return gin.H{
		"firstName":      "Asha",
		"lastName":       "Rao",
		"email":          "asha@example.com",
		"phone":          "9876543210",
		"address":        "12 MG Road",
		"city":           "Mumbai",
		"state":          "MH",
		"zipCode":        "400001",
		"paymentMethod":  payment,
		"shippingMethod": shipping,
	}
}

func postCheckout(t *testing.T, r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutEmptyCart(t *testing.T) {
	r := checkoutRouter(t)

	w := postCheckout(t, r, checkoutBody(models.PaymentCard, models.ShippingStandard))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	r := checkoutRouter(t)
	fillCart(t, 3000)

	w := postCheckout(t, r, checkoutBody(models.PaymentCard, models.ShippingStandard))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, models.StatusConfirmed, resp.Order.Status)
	assert.Equal(t, 3000.0, resp.Order.Subtotal)
	assert.Equal(t, 829.0, resp.Order.Shipping)
	assert.Equal(t, 540.0, resp.Order.Tax)
	assert.Equal(t, 4369.0, resp.Order.Total)
	require.Len(t, resp.Order.Items, 1)
	assert.Equal(t, "p1", resp.Order.Items[0].ProductID)

	// Le panier est vidé après la commande
	container, err := commerce.NewContainer(context.Background(), database.Store, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, container.TotalItems())
}

func TestCheckoutCashOnDelivery(t *testing.T) {
	r := checkoutRouter(t)
	fillCart(t, 3000)

	w := postCheckout(t, r, checkoutBody(models.PaymentCashOnDelivery, models.ShippingStandard))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusProcessing, resp.Order.Status)
}

func TestCheckoutSavesUserInfoDraft(t *testing.T) {
	r := checkoutRouter(t)
	fillCart(t, 3000)

	w := postCheckout(t, r, checkoutBody(models.PaymentCard, models.ShippingExpress))
	require.Equal(t, http.StatusCreated, w.Code)

	container, err := commerce.NewContainer(context.Background(), database.Store, "u1")
	require.NoError(t, err)
	info := container.UserInfo()
	assert.Equal(t, "Asha", info.FirstName)
	assert.Equal(t, "Mumbai", info.City)
	assert.Equal(t, "400001", info.ZipCode)
}

func TestCheckoutRejectsUnknownMethods(t *testing.T) {
	r := checkoutRouter(t)
	fillCart(t, 3000)

	w := postCheckout(t, r, checkoutBody("bitcoin", models.ShippingStandard))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postCheckout(t, r, checkoutBody(models.PaymentCard, "drone"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShippingOptionsFreeOverThreshold(t *testing.T) {
	r := checkoutRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/shipping/options?cart_total=5000", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var calc models.ShippingCalculation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &calc))

	assert.True(t, calc.IsFree)
	require.Len(t, calc.Options, 2)
	assert.Equal(t, 0.0, calc.Options[0].Price)
	assert.Equal(t, 1329.0, calc.Options[1].Price)
}

func TestCartSummaryMatchesCheckout(t *testing.T) {
	r := checkoutRouter(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/checkout/summary?subtotal=3000&shipping_method=standard&payment_method=cod", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var bd struct {
		Shipping float64 `json:"shipping"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bd))
	assert.Equal(t, 829.0, bd.Shipping)
	assert.Equal(t, 540.0, bd.Tax)
	assert.Equal(t, 4369.0, bd.Total)
}
