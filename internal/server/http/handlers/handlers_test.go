package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/anvilforge/storefront/internal/domain/errors"
	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/server/http/dto"
	testhelpers "github.com/anvilforge/storefront/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// performRequest registers the handler at pattern and sends a request to
// target, so tests can exercise path parameters.
func performRequest(t *testing.T, method, pattern, target string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, pattern, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return raw
}

func validCheckoutRequest() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		Shipping: dto.ShippingForm{
			Name: "Ada Forge", Address: "12 Crucible Way", City: "Bellingham",
			State: "WA", Zip: "98225", Email: "ada@example.com", Phone: "555-0142",
		},
		Payment: dto.PaymentForm{
			CardName: "Ada Forge", CardNumber: "4111111111111111", Expiry: "12/27", CVV: "123",
		},
	}
}

func TestCartHandlerGet(t *testing.T) {
	handler := NewCartHandler(testhelpers.CartFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/cart", "/cart", handler.Get, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var cart model.Cart
	if err := json.Unmarshal(resp.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if cart.Items == nil {
		t.Fatal("expected items array in response")
	}
}

func TestCartHandlerAddItem(t *testing.T) {
	t.Run("success echoes cart", func(t *testing.T) {
		var gotKind model.ItemKind
		handler := NewCartHandler(testhelpers.CartFacadeStub{
			AddItemFn: func(_ context.Context, item model.CartItem) (model.Cart, error) {
				gotKind = item.Kind
				return model.Cart{Items: []model.CartItem{item}}, nil
			},
		})
		body := mustMarshal(t, dto.AddItemRequest{ID: "gpu-9070", Name: "Forge RX 9070", Quantity: 1})
		resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.AddItem, body)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
		if gotKind != model.ItemKindComponent {
			t.Fatalf("expected unknown kind normalized to component, got %q", gotKind)
		}
	})

	t.Run("system kind preserved", func(t *testing.T) {
		var gotKind model.ItemKind
		handler := NewCartHandler(testhelpers.CartFacadeStub{
			AddItemFn: func(_ context.Context, item model.CartItem) (model.Cart, error) {
				gotKind = item.Kind
				return model.Cart{Items: []model.CartItem{item}}, nil
			},
		})
		body := mustMarshal(t, dto.AddItemRequest{ID: "sys-1", Kind: "system", Name: "Inferno"})
		resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.AddItem, body)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
		if gotKind != model.ItemKindSystem {
			t.Fatalf("expected system kind kept, got %q", gotKind)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{})
		resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.AddItem, []byte(`{`))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{})
		body := mustMarshal(t, dto.AddItemRequest{Quantity: 1})
		resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.AddItem, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{
			AddItemFn: func(context.Context, model.CartItem) (model.Cart, error) {
				return model.EmptyCart(), domainErrors.ErrInvalidItem
			},
		})
		body := mustMarshal(t, dto.AddItemRequest{ID: "gpu", Name: "part", Price: decimal.NewFromInt(-50)})
		resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.AddItem, body)
		if resp.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", resp.Code)
		}
	})

	t.Run("facade failure", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{
			AddItemFn: func(context.Context, model.CartItem) (model.Cart, error) {
				return model.Cart{}, errors.New("store down")
			},
		})
		body := mustMarshal(t, dto.AddItemRequest{ID: "gpu", Name: "part"})
		resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.AddItem, body)
		if resp.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", resp.Code)
		}
	})
}

func TestCartHandlerRemoveItem(t *testing.T) {
	handler := NewCartHandler(testhelpers.CartFacadeStub{})
	body := mustMarshal(t, dto.LineKeyRequest{ID: "gpu-9070"})
	resp := performRequest(t, http.MethodDelete, "/cart/items", "/cart/items", handler.RemoveItem, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/cart/items", "/cart/items", handler.RemoveItem, mustMarshal(t, dto.LineKeyRequest{}))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for missing id, got %d", resp.Code)
	}
}

func TestCartHandlerUpdateQuantity(t *testing.T) {
	var gotQuantity int
	handler := NewCartHandler(testhelpers.CartFacadeStub{
		UpdateQuantityFn: func(_ context.Context, _ string, _ model.Customizations, quantity int) (model.Cart, error) {
			gotQuantity = quantity
			return model.EmptyCart(), nil
		},
	})
	body := mustMarshal(t, dto.UpdateQuantityRequest{ID: "gpu", Quantity: 4})
	resp := performRequest(t, http.MethodPatch, "/cart/items", "/cart/items", handler.UpdateQuantity, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotQuantity != 4 {
		t.Fatalf("expected quantity 4 passed through, got %d", gotQuantity)
	}
}

func TestCartHandlerAdjustLine(t *testing.T) {
	t.Run("delta passes through", func(t *testing.T) {
		var gotIndex, gotDelta int
		handler := NewCartHandler(testhelpers.CartFacadeStub{
			UpdateItemAtFn: func(_ context.Context, index, delta int, _ *int) (model.Cart, error) {
				gotIndex, gotDelta = index, delta
				return model.EmptyCart(), nil
			},
		})
		body := mustMarshal(t, dto.AdjustLineRequest{Delta: -1})
		resp := performRequest(t, http.MethodPatch, "/cart/items/:index", "/cart/items/2", handler.AdjustLine, body)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
		if gotIndex != 2 || gotDelta != -1 {
			t.Fatalf("expected index 2 delta -1, got %d %d", gotIndex, gotDelta)
		}
	})

	t.Run("non-numeric index", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{})
		body := mustMarshal(t, dto.AdjustLineRequest{Delta: 1})
		resp := performRequest(t, http.MethodPatch, "/cart/items/:index", "/cart/items/abc", handler.AdjustLine, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("negative index", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{})
		body := mustMarshal(t, dto.AdjustLineRequest{Delta: 1})
		resp := performRequest(t, http.MethodPatch, "/cart/items/:index", "/cart/items/-1", handler.AdjustLine, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})
}

func TestCartHandlerClear(t *testing.T) {
	handler := NewCartHandler(testhelpers.CartFacadeStub{})
	resp := performRequest(t, http.MethodDelete, "/cart", "/cart", handler.Clear, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestCartHandlerCount(t *testing.T) {
	handler := NewCartHandler(testhelpers.CartFacadeStub{
		CartCountFn: func(context.Context) int { return 7 },
	})
	resp := performRequest(t, http.MethodGet, "/cart/count", "/cart/count", handler.Count, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var count dto.CartCountResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &count); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if count.Count != 7 {
		t.Fatalf("expected count 7, got %d", count.Count)
	}
}

func TestCartHandlerSaveForLater(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{})
		body := mustMarshal(t, dto.LineKeyRequest{ID: "gpu"})
		resp := performRequest(t, http.MethodPost, "/cart/save-for-later", "/cart/save-for-later", handler.SaveForLater, body)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
	})

	t.Run("no matching line", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{
			SaveForLaterFn: func(context.Context, string, model.Customizations) (model.CartItem, bool, error) {
				return model.CartItem{}, false, nil
			},
		})
		body := mustMarshal(t, dto.LineKeyRequest{ID: "missing"})
		resp := performRequest(t, http.MethodPost, "/cart/save-for-later", "/cart/save-for-later", handler.SaveForLater, body)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", resp.Code)
		}
	})
}

func TestCartHandlerRestore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{})
		body := mustMarshal(t, dto.LineKeyRequest{ID: "gpu"})
		resp := performRequest(t, http.MethodPost, "/cart/saved/restore", "/cart/saved/restore", handler.Restore, body)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
	})

	t.Run("unknown saved item", func(t *testing.T) {
		handler := NewCartHandler(testhelpers.CartFacadeStub{
			RestoreSavedFn: func(context.Context, string, model.Customizations) (model.Cart, bool, error) {
				return model.EmptyCart(), false, nil
			},
		})
		body := mustMarshal(t, dto.LineKeyRequest{ID: "missing"})
		resp := performRequest(t, http.MethodPost, "/cart/saved/restore", "/cart/saved/restore", handler.Restore, body)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", resp.Code)
		}
	})
}

func TestOrderHandlerCheckout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.CheckoutFacadeStub{})
		body := mustMarshal(t, validCheckoutRequest())
		resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", handler.Checkout, body)
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", resp.Code)
		}

		var order dto.OrderResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if order.Order.ID == "" {
			t.Fatal("expected order id in response")
		}
		if len(order.Steps) != len(model.StatusProgression()) {
			t.Fatalf("expected %d steps, got %d", len(model.StatusProgression()), len(order.Steps))
		}
		if order.StatusStep != 0 {
			t.Fatalf("expected initial step 0, got %d", order.StatusStep)
		}
	})

	t.Run("missing shipping field", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.CheckoutFacadeStub{})
		req := validCheckoutRequest()
		req.Shipping.Email = ""
		resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", handler.Checkout, mustMarshal(t, req))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.CheckoutFacadeStub{
			CheckoutFn: func(context.Context, model.ShippingInfo, model.PaymentDetails) (*model.Order, error) {
				return nil, domainErrors.ErrEmptyCart
			},
		})
		resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", handler.Checkout, mustMarshal(t, validCheckoutRequest()))
		if resp.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", resp.Code)
		}
	})

	t.Run("invalid payment", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.CheckoutFacadeStub{
			CheckoutFn: func(context.Context, model.ShippingInfo, model.PaymentDetails) (*model.Order, error) {
				return nil, domainErrors.ErrInvalidPayment
			},
		})
		resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", handler.Checkout, mustMarshal(t, validCheckoutRequest()))
		if resp.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", resp.Code)
		}
	})

	t.Run("unexpected failure", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.CheckoutFacadeStub{
			CheckoutFn: func(context.Context, model.ShippingInfo, model.PaymentDetails) (*model.Order, error) {
				return nil, errors.New("store down")
			},
		})
		resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", handler.Checkout, mustMarshal(t, validCheckoutRequest()))
		if resp.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", resp.Code)
		}
	})
}

func TestOrderHandlerStatus(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.CheckoutFacadeStub{
			OrderFn: func(_ context.Context, id string) (*model.Order, error) {
				return &model.Order{ID: id, Status: model.OrderStatusShipped}, nil
			},
		})
		resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/ORD-1", handler.Status, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}

		var order dto.OrderResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if order.StatusStep != 3 {
			t.Fatalf("expected step 3 for shipped, got %d", order.StatusStep)
		}
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.CheckoutFacadeStub{
			OrderFn: func(context.Context, string) (*model.Order, error) {
				return nil, domainErrors.ErrNotFound
			},
		})
		resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/ORD-NOPE", handler.Status, nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", resp.Code)
		}
	})
}

func TestCatalogHandlerComponents(t *testing.T) {
	components := map[string][]model.Component{
		"gpu": {{ID: "gpu-9070"}},
		"cpu": {{ID: "cpu-9800"}},
	}

	t.Run("full listing", func(t *testing.T) {
		handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{
			ComponentsFn: func(context.Context) (map[string][]model.Component, bool) {
				return components, true
			},
		})
		resp := performRequest(t, http.MethodGet, "/catalog/components", "/catalog/components", handler.Components, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}

		var got map[string][]model.Component
		if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(got))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{
			ComponentsFn: func(context.Context) (map[string][]model.Component, bool) {
				return components, true
			},
		})
		resp := performRequest(t, http.MethodGet, "/catalog/components", "/catalog/components?category=gpu", handler.Components, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}

		var got map[string][]model.Component
		if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(got) != 1 || len(got["gpu"]) != 1 {
			t.Fatalf("expected only the gpu group, got %+v", got)
		}
	})

	t.Run("unknown category yields empty group", func(t *testing.T) {
		handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{
			ComponentsFn: func(context.Context) (map[string][]model.Component, bool) {
				return components, true
			},
		})
		resp := performRequest(t, http.MethodGet, "/catalog/components", "/catalog/components?category=psu", handler.Components, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}

		var got map[string][]model.Component
		if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		group, ok := got["psu"]
		if !ok || len(group) != 0 {
			t.Fatalf("expected empty psu group, got %+v", got)
		}
	})

	t.Run("not loaded", func(t *testing.T) {
		handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{
			ComponentsFn: func(context.Context) (map[string][]model.Component, bool) {
				return nil, false
			},
		})
		resp := performRequest(t, http.MethodGet, "/catalog/components", "/catalog/components", handler.Components, nil)
		if resp.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status 503, got %d", resp.Code)
		}
	})
}

func TestCatalogHandlerSystems(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{
		SystemsFn: func(context.Context) ([]model.System, bool) {
			return []model.System{{ID: "sys-1"}}, true
		},
	})
	resp := performRequest(t, http.MethodGet, "/catalog/systems", "/catalog/systems", handler.Systems, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	notLoaded := NewCatalogHandler(testhelpers.CatalogFacadeStub{
		SystemsFn: func(context.Context) ([]model.System, bool) { return nil, false },
	})
	resp = performRequest(t, http.MethodGet, "/catalog/systems", "/catalog/systems", notLoaded.Systems, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

func TestCatalogHandlerSystemByID(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/catalog/systems/:id", "/catalog/systems/sys-1", handler.SystemByID, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	missing := NewCatalogHandler(testhelpers.CatalogFacadeStub{
		SystemByIDFn: func(context.Context, string) (*model.System, bool) { return nil, false },
	})
	resp = performRequest(t, http.MethodGet, "/catalog/systems/:id", "/catalog/systems/sys-x", missing.SystemByID, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestBuildHandlerSave(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewBuildHandler(testhelpers.BuildFacadeStub{})
		body := mustMarshal(t, dto.SaveBuildRequest{
			Name:       "quiet workstation",
			Components: map[string]string{"cpu": "cpu-9800", "gpu": "gpu-9070"},
		})
		resp := performRequest(t, http.MethodPost, "/builds", "/builds", handler.Save, body)
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", resp.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := NewBuildHandler(testhelpers.BuildFacadeStub{})
		resp := performRequest(t, http.MethodPost, "/builds", "/builds", handler.Save, []byte(`{`))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})
}

func TestBuildHandlerList(t *testing.T) {
	handler := NewBuildHandler(testhelpers.BuildFacadeStub{
		SavedBuildsFn: func(context.Context) []model.SavedBuild {
			return []model.SavedBuild{{ID: "custom-build-1"}}
		},
	})
	resp := performRequest(t, http.MethodGet, "/builds", "/builds", handler.List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var builds []model.SavedBuild
	if err := json.Unmarshal(resp.Body.Bytes(), &builds); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(builds) != 1 {
		t.Fatalf("expected one build, got %d", len(builds))
	}
}

func TestHealthHandler(t *testing.T) {
	healthy := NewHealthHandler(testhelpers.HealthFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/health", "/health", healthy.Check, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	down := NewHealthHandler(testhelpers.HealthFacadeStub{
		HealthFn: func(context.Context) error { return errors.New("db unreachable") },
	})
	resp = performRequest(t, http.MethodGet, "/health", "/health", down.Check, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}
