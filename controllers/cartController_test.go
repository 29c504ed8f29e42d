package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopcart/shop-api/controllers"
	"github.com/shopcart/shop-api/dtos"
	"github.com/shopcart/shop-api/routes"
	"github.com/shopcart/shop-api/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCartService returns canned results so the controller's binding
// and status mapping can be exercised without a store.
type stubCartService struct {
	cart    *dtos.CartResponse
	summary *dtos.CartSummaryResponse
	cleared bool
	err     error
}

func (s *stubCartService) GetOrCreateCart(sessionID string) (*dtos.CartResponse, error) {
	return s.cart, s.err
}

func (s *stubCartService) AddItemToCart(sessionID string, req dtos.AddToCartRequest) (*dtos.CartResponse, error) {
	return s.cart, s.err
}

func (s *stubCartService) UpdateCartItemQuantity(sessionID, cartItemID string, quantity int) (*dtos.CartResponse, error) {
	return s.cart, s.err
}

func (s *stubCartService) RemoveItemFromCart(sessionID, cartItemID string) (*dtos.CartResponse, error) {
	return s.cart, s.err
}

func (s *stubCartService) ClearCart(sessionID string) (bool, error) {
	return s.cleared, s.err
}

func (s *stubCartService) GetCartSummary(sessionID string) (*dtos.CartSummaryResponse, error) {
	return s.summary, s.err
}

func newCartTestServer(svc services.CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	routes.CartRoutes(server, controllers.NewCartController(svc))
	return server
}

func TestGetCartReturnsView(t *testing.T) {
	svc := &stubCartService{
		cart: &dtos.CartResponse{
			ID:         "cart-1",
			SessionID:  "s1",
			Items:      []dtos.CartItemResponse{},
			TotalPrice: decimal.Zero,
		},
	}
	server := newCartTestServer(svc)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/carts/s1", nil)
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body dtos.CartResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "cart-1", body.ID)
	assert.Equal(t, "s1", body.SessionID)
}

func TestGetCartSummaryReturnsTotals(t *testing.T) {
	svc := &stubCartService{
		summary: &dtos.CartSummaryResponse{TotalItems: 5, TotalPrice: decimal.NewFromFloat(80.00)},
	}
	server := newCartTestServer(svc)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/carts/s1/summary", nil)
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"totalItems":5,"totalPrice":"80"}`, recorder.Body.String())
}

func TestAddItemStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "missing product maps to 404",
			serviceErr: &services.NotFoundError{Message: "product with id p1 not found"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid quantity maps to 400",
			serviceErr: &services.InvalidArgumentError{Message: "quantity must be greater than zero"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "insufficient stock maps to 400",
			serviceErr: &services.InsufficientStockError{Available: 5, Message: "Insufficient stock. Only 5 items available."},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newCartTestServer(&stubCartService{err: tt.serviceErr})

			payload, _ := json.Marshal(dtos.AddToCartRequest{ProductID: "p1", Quantity: 1})
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/carts/s1/items", bytes.NewReader(payload))
			request.Header.Set("Content-Type", "application/json")
			server.ServeHTTP(recorder, request)

			require.Equal(t, tt.wantStatus, recorder.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.serviceErr.Error(), body["message"])
		})
	}
}

func TestAddItemRejectsMalformedBody(t *testing.T) {
	server := newCartTestServer(&stubCartService{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/carts/s1/items", bytes.NewReader([]byte(`{`)))
	request.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateItemNotFoundMapsTo404(t *testing.T) {
	svc := &stubCartService{err: &services.NotFoundError{Message: "cart item not found"}}
	server := newCartTestServer(svc)

	payload, _ := json.Marshal(dtos.UpdateCartItemRequest{Quantity: 2})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/carts/s1/items/item-1", bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "cart item not found")
}

func TestClearCartReturnsNoContent(t *testing.T) {
	server := newCartTestServer(&stubCartService{cleared: true})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/carts/s1", nil)
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}
