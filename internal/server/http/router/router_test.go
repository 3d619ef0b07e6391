package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/server/http/dto"
	testhelpers "github.com/anvilforge/storefront/internal/test"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(testhelpers.StorefrontFacadeStub{}, logger)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/cart", http.StatusOK},
		{http.MethodGet, "/api/cart/count", http.StatusOK},
		{http.MethodGet, "/api/cart/saved", http.StatusOK},
		{http.MethodDelete, "/api/cart", http.StatusOK},
		{http.MethodGet, "/api/catalog/components", http.StatusOK},
		{http.MethodGet, "/api/catalog/systems", http.StatusOK},
		{http.MethodGet, "/api/catalog/systems/sys-1", http.StatusOK},
		{http.MethodGet, "/api/orders/ORD-1", http.StatusOK},
		{http.MethodGet, "/api/builds", http.StatusOK},
		{http.MethodGet, "/api/nope", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, w.Code)
		}
	}
}

func TestRouterAddItem(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(dto.AddItemRequest{ID: "gpu-9070", Name: "Forge RX 9070", Quantity: 1})
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var cart model.Cart
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ID != "gpu-9070" {
		t.Fatalf("expected echoed cart line, got %+v", cart.Items)
	}
}

func TestRouterGzipResponse(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatal("expected gzip encoded response")
	}

	reader, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("open gzip reader: %v", err)
	}
	defer reader.Close()

	var cart model.Cart
	if err := json.NewDecoder(reader).Decode(&cart); err != nil {
		t.Fatalf("decode gzip body: %v", err)
	}
}

func TestRouterGzipRequest(t *testing.T) {
	router := newTestRouter(t)

	payload, _ := json.Marshal(dto.LineKeyRequest{ID: "gpu-9070"})
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("compress payload: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/cart/save-for-later", &compressed)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
