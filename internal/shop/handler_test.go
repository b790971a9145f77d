package shop

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/appetiteclub/apt"
	"github.com/go-chi/chi/v5"

	"github.com/storefrontclub/storefront/internal/cart"
	"github.com/storefrontclub/storefront/internal/catalog"
)

func testRouter(t *testing.T) (chi.Router, *Handler) {
	t.Helper()
	deps := HandlerDeps{
		Loader:  NewLoader(Seafood(), "", nil),
		Catalog: catalog.Seafood(),
		Carts:   cart.NewRegistry(nil),
	}
	h := NewHandler(deps, apt.NewConfig(), nil)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r, h
}

func do(r chi.Router, method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewHandlerNilDeps(t *testing.T) {
	h := NewHandler(HandlerDeps{}, apt.NewConfig(), nil)

	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
	if h.logger == nil {
		t.Error("NewHandler() should set noop logger when nil")
	}
	if h.carts == nil {
		t.Error("NewHandler() should default the cart registry")
	}
}

func TestGetConfig(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/config", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "honeys-fresh-n-frozen") {
		t.Errorf("body missing shop slug: %s", w.Body.String())
	}
}

func TestGetContactLinks(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/contact/links", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "tel:+919419141495") {
		t.Errorf("body missing tel link: %s", body)
	}
	if !strings.Contains(body, "https://wa.me/919419141495") {
		t.Errorf("body missing whatsapp link: %s", body)
	}
}

func TestDownloadVCard(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/contact/vcard", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/vcard") {
		t.Errorf("Content-Type = %q, want text/vcard", got)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "-contact.vcf") {
		t.Errorf("Content-Disposition = %q, want .vcf attachment", got)
	}
	if !strings.HasPrefix(w.Body.String(), "BEGIN:VCARD\r\n") {
		t.Errorf("body is not a vCard: %s", w.Body.String())
	}
}

func TestGetPaymentLinks(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/payment/links?amount=500", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	for _, want := range []string{
		"upi://pay?pa=honeyashrama%40oksbi",
		"paytmmp://pay?",
		"tez://upi/pay?",
		"phonepe://pay?",
		"am=500",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
}

// A malformed amount degrades to an open-amount link instead of failing.
func TestGetPaymentLinksMalformedAmount(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/payment/links?amount=lots", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if strings.Contains(w.Body.String(), "am=") {
		t.Errorf("body should carry no amount: %s", w.Body.String())
	}
}

func TestGetMenu(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/menu", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Indian Salmon Fish") {
		t.Errorf("body missing catalog items: %s", w.Body.String())
	}
}

func TestGetMenuCategory(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/menu/prawns", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	w = do(r, http.MethodGet, "/api/menu/desserts", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown category status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetGallery(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/gallery", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "gallery/storefront.jpg") {
		t.Errorf("body missing gallery images: %s", w.Body.String())
	}
}

func createCart(t *testing.T, r chi.Router) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/carts", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("CreateCart status = %d, want %d", w.Code, http.StatusCreated)
	}

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid create response: %v", err)
	}
	if resp.Data.ID == "" {
		t.Fatal("create response missing cart id")
	}
	return resp.Data.ID
}

func decodeCartView(t *testing.T, w *httptest.ResponseRecorder) cartView {
	t.Helper()
	var resp struct {
		Data cartView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return resp.Data
}

func TestCartFlow(t *testing.T) {
	r, _ := testRouter(t)
	id := createCart(t, r)

	// Add two salmon and one mutton boneless.
	for i := 0; i < 2; i++ {
		w := do(r, http.MethodPost, "/api/carts/"+id+"/items", `{"item_id":"fish-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("AddCartItem status = %d, want %d", w.Code, http.StatusOK)
		}
	}
	w := do(r, http.MethodPost, "/api/carts/"+id+"/items", `{"item_id":"mutton-2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("AddCartItem status = %d, want %d", w.Code, http.StatusOK)
	}

	w = do(r, http.MethodGet, "/api/carts/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GetCart status = %d, want %d", w.Code, http.StatusOK)
	}
	view := decodeCartView(t, w)
	// 2 x ₹400 + 1 x ₹1,000 = 1800.00
	if view.TotalPrice != "1800.00" {
		t.Errorf("TotalPrice = %q, want %q", view.TotalPrice, "1800.00")
	}
	if view.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", view.TotalItems)
	}

	// Quantity zero removes the line.
	w = do(r, http.MethodPatch, "/api/carts/"+id+"/items/fish-1", `{"quantity":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("UpdateCartItem status = %d, want %d", w.Code, http.StatusOK)
	}
	view = decodeCartView(t, w)
	if len(view.Items) != 1 || view.Items[0].ID != "mutton-2" {
		t.Errorf("zero-quantity line should be removed, items = %v", view.Items)
	}

	w = do(r, http.MethodDelete, "/api/carts/"+id+"/items/mutton-2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("RemoveCartItem status = %d, want %d", w.Code, http.StatusOK)
	}
	if view = decodeCartView(t, w); view.TotalItems != 0 {
		t.Errorf("TotalItems = %d, want empty cart", view.TotalItems)
	}

	w = do(r, http.MethodDelete, "/api/carts/"+id, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("DeleteCart status = %d, want %d", w.Code, http.StatusNoContent)
	}
	w = do(r, http.MethodGet, "/api/carts/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("GetCart after delete status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAddCartItemUnknownItem(t *testing.T) {
	r, _ := testRouter(t)
	id := createCart(t, r)

	w := do(r, http.MethodPost, "/api/carts/"+id+"/items", `{"item_id":"no-such-item"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAddCartItemInvalidJSON(t *testing.T) {
	r, _ := testRouter(t)
	id := createCart(t, r)

	w := do(r, http.MethodPost, "/api/carts/"+id+"/items", `{"item_id":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCartInvalidID(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, http.MethodGet, "/api/carts/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	w = do(r, http.MethodGet, fmt.Sprintf("/api/carts/%s", "550e8400-e29b-41d4-a716-446655440000"), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetCartWhatsApp(t *testing.T) {
	r, _ := testRouter(t)
	id := createCart(t, r)

	w := do(r, http.MethodPost, "/api/carts/"+id+"/items", `{"item_id":"fish-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("AddCartItem status = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/carts/"+id+"/whatsapp", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Data cartWhatsApp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if !strings.Contains(resp.Data.Message, "Indian Salmon Fish") {
		t.Errorf("message missing item: %q", resp.Data.Message)
	}
	if !strings.HasPrefix(resp.Data.Link, "https://wa.me/919419141495?text=") {
		t.Errorf("link = %q, want wa.me deep link", resp.Data.Link)
	}
}
