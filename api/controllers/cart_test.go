package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/velora-motors/storefront-backend/api/middleware"
	cartsvc "github.com/velora-motors/storefront-backend/internal/cart"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
)

type stubCartService struct {
	view *cartsvc.View
	err  error
}

func (s stubCartService) GetCart(ctx context.Context, sessionID string) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s stubCartService) AddItem(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s stubCartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s stubCartService) Clear(ctx context.Context, sessionID string) error {
	return s.err
}

func TestCartFetchSuccess(t *testing.T) {
	view := &cartsvc.View{
		Items: []cartsvc.LineItem{{ID: "item-1", VehicleID: "astra-electric", TotalPrice: 48000}},
		Total: 48000,
	}
	handler := CartFetch(stubCartService{view: view}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "s1"))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.View `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != 48000 || len(envelope.Data.Items) != 1 {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestCartFetchMissingSession(t *testing.T) {
	handler := CartFetch(stubCartService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartAddItemCreated(t *testing.T) {
	view := &cartsvc.View{
		Items: []cartsvc.LineItem{{ID: "item-1", VehicleID: "astra-electric", TotalPrice: 48000}},
		Total: 48000,
	}
	handler := CartAddItem(stubCartService{view: view}, nil)

	body := strings.NewReader(`{"vehicle_id":"astra-electric","color":"Pearl White","interior":"Premium Leather"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "s1"))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsMissingFields(t *testing.T) {
	handler := CartAddItem(stubCartService{}, nil)

	body := strings.NewReader(`{"vehicle_id":"astra-electric"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "s1"))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRemoveItemPropagatesServiceError(t *testing.T) {
	handler := CartRemoveItem(stubCartService{err: pkgerrors.New(pkgerrors.CodeDependency, "store down")}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/item-1", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "s1"))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}
