package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/models"
)

// browser replays cookies between requests, emulating one storefront
// visitor across page loads.
type browser struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, router *gin.Engine) *browser {
	return &browser{t: t, router: router, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(method, path, body string) *httptest.ResponseRecorder {
	b.t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	b.router.ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		b.cookies[cookie.Name] = cookie
	}
	return rec
}

func (b *browser) cartResponse(rec *httptest.ResponseRecorder) models.CartResponse {
	b.t.Helper()
	var resp models.CartResponse
	require.NoError(b.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func setupCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCartHandler(cart.NewCookieStore("test-secret"), zerolog.Nop())

	router := gin.New()
	group := router.Group("/api/cart")
	{
		group.GET("", handler.GetCart)
		group.POST("/add", handler.AddToCart)
		group.DELETE("/remove/:key", handler.RemoveFromCart)
		group.POST("/increase/:key", handler.IncreaseQuantity)
		group.POST("/decrease/:key", handler.DecreaseQuantity)
		group.POST("/clear", handler.ClearCart)
		group.GET("/count", handler.GetCartCount)
	}
	return router
}

const addItemBody = `{
	"product_id": 1,
	"title": "Raincoat",
	"price": 200000,
	"quantity": 1,
	"weight": 300,
	"weight_unit": "gram"
}`

func TestCartEmptyByDefault(t *testing.T) {
	visitor := newBrowser(t, setupCartRouter())

	rec := visitor.do(http.MethodGet, "/api/cart", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := visitor.cartResponse(rec)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.TotalPrice)
}

func TestCartRepeatAddMergesAcrossRequests(t *testing.T) {
	visitor := newBrowser(t, setupCartRouter())

	rec := visitor.do(http.MethodPost, "/api/cart/add", addItemBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = visitor.do(http.MethodPost, "/api/cart/add", addItemBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := visitor.cartResponse(rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, float64(400000), resp.TotalPrice)
	assert.Equal(t, float64(600), resp.TotalWeightGrams)
}

func TestCartAddValidation(t *testing.T) {
	visitor := newBrowser(t, setupCartRouter())

	rec := visitor.do(http.MethodPost, "/api/cart/add", `{"product_id": 1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartQuantityEndpoints(t *testing.T) {
	visitor := newBrowser(t, setupCartRouter())
	visitor.do(http.MethodPost, "/api/cart/add", addItemBody)

	key := "1:-:-:-"

	resp := visitor.cartResponse(visitor.do(http.MethodPost, "/api/cart/increase/"+key, ""))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)

	visitor.do(http.MethodPost, "/api/cart/decrease/"+key, "")
	resp = visitor.cartResponse(visitor.do(http.MethodPost, "/api/cart/decrease/"+key, ""))
	assert.Equal(t, 1, resp.Items[0].Quantity, "decrement floors at one")

	resp = visitor.cartResponse(visitor.do(http.MethodDelete, "/api/cart/remove/"+key, ""))
	assert.Empty(t, resp.Items)
}

func TestCartClearEndpoint(t *testing.T) {
	visitor := newBrowser(t, setupCartRouter())
	visitor.do(http.MethodPost, "/api/cart/add", addItemBody)

	rec := visitor.do(http.MethodPost, "/api/cart/clear", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := visitor.cartResponse(visitor.do(http.MethodGet, "/api/cart", ""))
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.TotalPrice)
	assert.Zero(t, resp.TotalWeightGrams)
}

func TestCartCountEndpoint(t *testing.T) {
	visitor := newBrowser(t, setupCartRouter())
	visitor.do(http.MethodPost, "/api/cart/add", addItemBody)
	visitor.do(http.MethodPost, "/api/cart/add", addItemBody)

	rec := visitor.do(http.MethodGet, "/api/cart/count", "")

	var resp models.CartCountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}
