package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/internal/server"
)

// setupAPI builds the full handler (middleware stack included) over an
// in-memory SQLite database seeded with a small catalog.
func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderLine{}))

	products := []models.Product{
		{ID: 1, ProductName: "HP laptop", ProductDescription: "This is HP laptop"},
		{ID: 2, ProductName: "lenovo laptop", ProductDescription: "This is lenovo"},
	}
	require.NoError(t, db.Create(&products).Error)

	return server.Handler(db)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListProducts(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "HP laptop", products[0].ProductName)
	assert.Equal(t, "lenovo laptop", products[1].ProductName)
}

func TestCreateOrder(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderDescription": "Laptop order",
		"productIds":       []uint{1, 2},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.EqualValues(t, 1, order.ID)
	assert.Equal(t, "Laptop order", order.OrderDescription)
	require.Len(t, order.OrderProducts, 2)
	assert.EqualValues(t, 1, order.OrderProducts[0].ProductID)
	assert.EqualValues(t, 2, order.OrderProducts[1].ProductID)
	require.NotNil(t, order.OrderProducts[0].Product)
	assert.Equal(t, "HP laptop", order.OrderProducts[0].Product.ProductName)
}

func TestCreateOrderMissingFields(t *testing.T) {
	h := setupAPI(t)

	// Missing productIds.
	rec := doJSON(t, h, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderDescription": "no products key",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing orderDescription.
	rec = doJSON(t, h, http.MethodPost, "/api/orders", map[string]interface{}{
		"productIds": []uint{1},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed body.
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	out := httptest.NewRecorder()
	h.ServeHTTP(out, req)
	assert.Equal(t, http.StatusBadRequest, out.Code)
}

func TestGetOrder(t *testing.T) {
	h := setupAPI(t)

	doJSON(t, h, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderDescription": "fetch me",
		"productIds":       []uint{2},
	})

	rec := doJSON(t, h, http.MethodGet, "/api/order/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "fetch me", order.OrderDescription)
}

func TestGetOrderInvalidID(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/order/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid id"}`, rec.Body.String())
}

func TestGetOrderNotFound(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/order/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Order not found"}`, rec.Body.String())
}

func TestListOrdersNewestFirst(t *testing.T) {
	h := setupAPI(t)

	doJSON(t, h, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderDescription": "first",
		"productIds":       []uint{1},
	})
	doJSON(t, h, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderDescription": "second",
		"productIds":       []uint{},
	})

	rec := doJSON(t, h, http.MethodGet, "/api/order", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "second", orders[0].OrderDescription)
	assert.Equal(t, "first", orders[1].OrderDescription)
}

func TestUpdateOrderClearsProducts(t *testing.T) {
	h := setupAPI(t)

	doJSON(t, h, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderDescription": "has products",
		"productIds":       []uint{1, 2},
	})

	rec := doJSON(t, h, http.MethodPut, "/api/orders/1", map[string]interface{}{
		"productIds": []uint{},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "has products", order.OrderDescription)
	assert.Empty(t, order.OrderProducts)
}

func TestUpdateOrderNotFound(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodPut, "/api/orders/77", map[string]interface{}{
		"orderDescription": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOrder(t *testing.T) {
	h := setupAPI(t)

	doJSON(t, h, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderDescription": "delete me",
		"productIds":       []uint{1},
	})

	rec := doJSON(t, h, http.MethodDelete, "/api/orders/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/api/order/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOrderInvalidID(t *testing.T) {
	h := setupAPI(t)

	rec := doJSON(t, h, http.MethodDelete, "/api/orders/zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
