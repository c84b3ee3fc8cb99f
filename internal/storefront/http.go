package storefront

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-faster/errors"

	cartapp "github.com/leng404/gymshop/internal/cart/app"
	catalogapp "github.com/leng404/gymshop/internal/catalog/app"
	checkoutapp "github.com/leng404/gymshop/internal/checkout/app"
	checkoutadapter "github.com/leng404/gymshop/internal/checkout/infra/adapter"
)

// Handler exposes the controller over HTTP. Fragment endpoints return
// JSON envelopes with the re-rendered HTML; the client swaps them in.
type Handler struct {
	ctrl *Controller
	log  *slog.Logger
}

func NewHandler(ctrl *Controller, log *slog.Logger) *Handler {
	return &Handler{ctrl: ctrl, log: log}
}

// Routes builds the mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.page)
	mux.HandleFunc("GET /products", h.grid)
	mux.HandleFunc("GET /cart", h.cart)
	mux.HandleFunc("POST /cart/items", h.addItem)
	mux.HandleFunc("POST /cart/items/{id}/quantity", h.updateQuantity)
	mux.HandleFunc("DELETE /cart/items/{id}", h.removeItem)
	mux.HandleFunc("POST /cart/checkout", h.checkout)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return mux
}

type cartResponse struct {
	ItemCount int64  `json:"itemCount"`
	Cart      string `json:"cart"`
	Summary   string `json:"summary"`
	Removed   *bool  `json:"removed,omitempty"`
}

type checkoutResponse struct {
	Status    string          `json:"status"`
	Receipt   *receiptPayload `json:"receipt,omitempty"`
	ItemCount int64           `json:"itemCount"`
	Cart      string          `json:"cart"`
	Summary   string          `json:"summary"`
}

type receiptPayload struct {
	ItemCount int64  `json:"itemCount"`
	Subtotal  string `json:"subtotal"`
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	html, err := h.ctrl.Page(r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (h *Handler) grid(w http.ResponseWriter, r *http.Request) {
	html, err := h.ctrl.Grid(r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (h *Handler) cart(w http.ResponseWriter, r *http.Request) {
	frag, err := h.ctrl.Cart()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, fragmentResponse(frag, nil))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		h.writeJSON(w, http.StatusBadRequest, errorPayload("BAD_REQUEST", "productId is required"))
		return
	}

	frag, err := h.ctrl.AddToCart(req.ProductID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, fragmentResponse(frag, nil))
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta int64 `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorPayload("BAD_REQUEST", "delta is required"))
		return
	}

	frag, err := h.ctrl.UpdateQuantity(r.PathValue("id"), req.Delta)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, fragmentResponse(frag, nil))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	frag, removed, err := h.ctrl.Remove(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, fragmentResponse(frag, &removed))
}

// checkout binds the client's dialog answer into a confirmer, so the
// flow runs its full transition sequence per request. A declined
// order is a normal outcome, not an error status.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorPayload("BAD_REQUEST", "confirmed is required"))
		return
	}

	receipt, frag, err := h.ctrl.Checkout(r.Context(), checkoutadapter.StaticConfirmer{Answer: req.Confirmed})
	if err != nil {
		if errors.Is(err, checkoutapp.ErrCancelled) {
			h.writeJSON(w, http.StatusOK, checkoutResponse{
				Status:    "cancelled",
				ItemCount: frag.ItemCount,
				Cart:      frag.PanelHTML,
				Summary:   frag.SummaryHTML,
			})
			return
		}
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, checkoutResponse{
		Status: "completed",
		Receipt: &receiptPayload{
			ItemCount: receipt.ItemCount,
			Subtotal:  receipt.Subtotal.StringFixed(2),
		},
		ItemCount: frag.ItemCount,
		Cart:      frag.PanelHTML,
		Summary:   frag.SummaryHTML,
	})
}

func fragmentResponse(frag CartFragment, removed *bool) cartResponse {
	return cartResponse{
		ItemCount: frag.ItemCount,
		Cart:      frag.PanelHTML,
		Summary:   frag.SummaryHTML,
		Removed:   removed,
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorPayload(code, msg string) errorBody {
	return errorBody{Error: errorDetail{Code: code, Message: msg}}
}

// httpStatusFromError maps domain errors onto HTTP statuses and
// stable machine-readable codes.
func httpStatusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, cartapp.ErrProductNotFound):
		return http.StatusNotFound, "PRODUCT_NOT_FOUND"
	case errors.Is(err, cartapp.ErrLineNotFound):
		return http.StatusNotFound, "LINE_NOT_FOUND"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART"
	case errors.Is(err, catalogapp.ErrMalformedPayload):
		return http.StatusBadGateway, "BAD_UPSTREAM"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, code := httpStatusFromError(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", slog.Any("err", err))
	}
	h.writeJSON(w, status, errorPayload(code, err.Error()))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("encode response", slog.Any("err", err))
	}
}
