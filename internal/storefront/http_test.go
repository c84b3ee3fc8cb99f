package storefront

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-faster/errors"

	cartapp "github.com/leng404/gymshop/internal/cart/app"
	catalogapp "github.com/leng404/gymshop/internal/catalog/app"
	checkoutapp "github.com/leng404/gymshop/internal/checkout/app"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctrl := newTestController(t,
		rawProduct("p1", "Yoga Mat", "19.99"),
		rawProduct("p2", "Dumbbell", "7.50"),
	)
	h := NewHandler(ctrl, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func TestHTTPAddAndTotals(t *testing.T) {
	srv := newTestServer(t)

	var last cartResponse
	for i := 0; i < 2; i++ {
		resp, data := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]string{"productId": "p1"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, body %s", resp.StatusCode, data)
		}
		if err := json.Unmarshal(data, &last); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}

	if last.ItemCount != 2 {
		t.Fatalf("itemCount = %d, want 2", last.ItemCount)
	}
	for _, want := range []string{"39.98 $", "1.00 $", "40.98 $"} {
		if !bytes.Contains([]byte(last.Summary), []byte(want)) {
			t.Fatalf("missing %q in summary:\n%s", want, last.Summary)
		}
	}
}

func TestHTTPErrors(t *testing.T) {
	srv := newTestServer(t)

	t.Run("unknown product -> 404 PRODUCT_NOT_FOUND", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]string{"productId": "ghost"})
		assertError(t, resp, data, http.StatusNotFound, "PRODUCT_NOT_FOUND")
	})

	t.Run("quantity on missing line -> 404 LINE_NOT_FOUND", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPost, srv.URL+"/cart/items/p2/quantity", map[string]int{"delta": 1})
		assertError(t, resp, data, http.StatusNotFound, "LINE_NOT_FOUND")
	})

	t.Run("missing productId -> 400", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]string{})
		assertError(t, resp, data, http.StatusBadRequest, "BAD_REQUEST")
	})

	t.Run("checkout on empty cart -> 409 EMPTY_CART", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPost, srv.URL+"/cart/checkout", map[string]bool{"confirmed": true})
		assertError(t, resp, data, http.StatusConflict, "EMPTY_CART")
	})
}

func TestHTTPQuantityAndRemove(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]string{"productId": "p1"})

	t.Run("delta below one removes the line", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPost, srv.URL+"/cart/items/p1/quantity", map[string]int{"delta": -1})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, body %s", resp.StatusCode, data)
		}
		var cr cartResponse
		if err := json.Unmarshal(data, &cr); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if cr.ItemCount != 0 {
			t.Fatalf("itemCount = %d, want 0", cr.ItemCount)
		}
	})

	t.Run("remove on missing line is 200 removed=false", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodDelete, srv.URL+"/cart/items/p1", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, body %s", resp.StatusCode, data)
		}
		var cr cartResponse
		if err := json.Unmarshal(data, &cr); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if cr.Removed == nil || *cr.Removed {
			t.Fatalf("removed = %v, want false", cr.Removed)
		}
	})
}

func TestHTTPCheckout(t *testing.T) {
	srv := newTestServer(t)

	add := func() {
		resp, data := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]string{"productId": "p1"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("add: status = %d, body %s", resp.StatusCode, data)
		}
	}

	add()

	t.Run("declined is a normal cancelled outcome", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPost, srv.URL+"/cart/checkout", map[string]bool{"confirmed": false})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, body %s", resp.StatusCode, data)
		}
		var cr checkoutResponse
		if err := json.Unmarshal(data, &cr); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if cr.Status != "cancelled" || cr.ItemCount != 1 {
			t.Fatalf("got %+v", cr)
		}
	})

	add()

	t.Run("confirmed completes with a receipt", func(t *testing.T) {
		resp, data := doJSON(t, http.MethodPost, srv.URL+"/cart/checkout", map[string]bool{"confirmed": true})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, body %s", resp.StatusCode, data)
		}
		var cr checkoutResponse
		if err := json.Unmarshal(data, &cr); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if cr.Status != "completed" || cr.Receipt == nil {
			t.Fatalf("got %+v", cr)
		}
		if cr.Receipt.ItemCount != 2 || cr.Receipt.Subtotal != "39.98" {
			t.Fatalf("receipt = %+v", cr.Receipt)
		}
		if cr.ItemCount != 0 {
			t.Fatalf("cart itemCount = %d after checkout, want 0", cr.ItemCount)
		}
	})
}

func TestHTTPPage(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{"Yoga Mat", "Dumbbell", "Your Cart Is Empty"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Fatalf("missing %q in page", want)
		}
	}
}

func TestHTTPStatusFromError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"product not found", cartapp.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"line not found", cartapp.ErrLineNotFound, http.StatusNotFound, "LINE_NOT_FOUND"},
		{"empty cart", checkoutapp.ErrEmptyCart, http.StatusConflict, "EMPTY_CART"},
		{"malformed payload", catalogapp.ErrMalformedPayload, http.StatusBadGateway, "BAD_UPSTREAM"},
		{"wrapped sentinel", errors.Wrap(cartapp.ErrLineNotFound, "ctx"), http.StatusNotFound, "LINE_NOT_FOUND"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, gotCode := httpStatusFromError(tc.err)
			if gotStatus != tc.wantStatus || gotCode != tc.wantCode {
				t.Fatalf("got (%d,%s), want (%d,%s)", gotStatus, gotCode, tc.wantStatus, tc.wantCode)
			}
		})
	}
}

func assertError(t *testing.T, resp *http.Response, data []byte, wantStatus int, wantCode string) {
	t.Helper()
	if resp.StatusCode != wantStatus {
		t.Fatalf("status = %d, want %d (body %s)", resp.StatusCode, wantStatus, data)
	}
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if eb.Error.Code != wantCode {
		t.Fatalf("code = %q, want %q", eb.Error.Code, wantCode)
	}
}
