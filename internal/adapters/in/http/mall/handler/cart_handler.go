// internal/adapters/in/http/mall/handler/cart_handler.go
package mallHandler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	usecase "storefront/internal/application/usecase"
	cartdom "storefront/internal/domain/cart"
)

// CartHandler serves /mall/cart.
type CartHandler struct {
	uc  *usecase.CartUsecase
	log *zap.Logger
	mux http.Handler
}

func NewCartHandler(uc *usecase.CartUsecase, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &CartHandler{uc: uc, log: log.Named("mall_cart_handler")}

	r := newRouter()
	r.Get("/", h.get)
	r.Delete("/", h.clear)
	r.Post("/items", h.addItem)
	r.Put("/items/{itemId}", h.setQty)
	r.Delete("/items/{itemId}", h.removeItem)
	r.Post("/items/{itemId}/increment", h.increment)
	r.Post("/items/{itemId}/decrement", h.decrement)
	r.Put("/delivery", h.selectDelivery)
	r.Post("/promo", h.applyPromo)
	r.Delete("/promo", h.clearPromo)
	r.Post("/checkout", h.checkout)
	h.mux = r
	return h
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}
	h.mux.ServeHTTP(w, r)
}

type addItemReq struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type setQtyReq struct {
	Qty int `json:"qty"`
}

type deliveryReq struct {
	OptionID int `json:"optionId"`
}

type promoReq struct {
	Code string `json:"code"`
}

// get returns the session cart, creating one when the session has none yet.
func (h *CartHandler) get(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.GetOrCreate(r.Context(), readCartID(r))
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	h.writeView(w, http.StatusOK, v)
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Clear(r.Context(), readCartID(r)); err != nil {
		h.fail(w, "clear", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}
	v, err := h.uc.AddItem(r.Context(), readCartID(r), req.ProductID, req.Qty)
	if err != nil {
		h.fail(w, "add-item", err)
		return
	}
	h.writeView(w, http.StatusOK, v)
}

func (h *CartHandler) setQty(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt(r, "itemId")
	if !ok {
		badRequest(w, "invalid itemId")
		return
	}
	var req setQtyReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	h.respond(w, "set-qty")(h.uc.SetItemQty(r.Context(), readCartID(r), itemID, req.Qty))
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt(r, "itemId")
	if !ok {
		badRequest(w, "invalid itemId")
		return
	}
	h.respond(w, "remove-item")(h.uc.RemoveItem(r.Context(), readCartID(r), itemID))
}

func (h *CartHandler) increment(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt(r, "itemId")
	if !ok {
		badRequest(w, "invalid itemId")
		return
	}
	h.respond(w, "increment")(h.uc.IncrementItem(r.Context(), readCartID(r), itemID))
}

func (h *CartHandler) decrement(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt(r, "itemId")
	if !ok {
		badRequest(w, "invalid itemId")
		return
	}
	h.respond(w, "decrement")(h.uc.DecrementItem(r.Context(), readCartID(r), itemID))
}

func (h *CartHandler) selectDelivery(w http.ResponseWriter, r *http.Request) {
	var req deliveryReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	h.respond(w, "delivery")(h.uc.SelectDelivery(r.Context(), readCartID(r), req.OptionID))
}

// applyPromo answers 422 for an unknown code; the body still carries the repriced cart.
func (h *CartHandler) applyPromo(w http.ResponseWriter, r *http.Request) {
	var req promoReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	v, err := h.uc.ApplyPromo(r.Context(), readCartID(r), req.Code)
	if errors.Is(err, cartdom.ErrPromoCodeRejected) {
		w.Header().Set(CartIDHeader, v.Cart.ID)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Invalid promo code",
			"code":   "promo_rejected",
			"cart":   v.Cart,
			"totals": v.Totals,
		})
		return
	}
	if err != nil {
		h.fail(w, "promo", err)
		return
	}
	h.writeView(w, http.StatusOK, v)
}

func (h *CartHandler) clearPromo(w http.ResponseWriter, r *http.Request) {
	h.respond(w, "clear-promo")(h.uc.ClearPromo(r.Context(), readCartID(r)))
}

func (h *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.uc.Checkout(r.Context(), readCartID(r))
	if err != nil {
		h.fail(w, "checkout", err)
		return
	}
	h.log.Info("checkout", zap.String("cartId", receipt.CartID), zap.String("total", receipt.Totals.Total.String()))
	writeJSON(w, http.StatusOK, receipt)
}

// ============================================================
// helpers
// ============================================================

func (h *CartHandler) respond(w http.ResponseWriter, op string) func(usecase.CartView, error) {
	return func(v usecase.CartView, err error) {
		if err != nil {
			h.fail(w, op, err)
			return
		}
		h.writeView(w, http.StatusOK, v)
	}
}

func (h *CartHandler) writeView(w http.ResponseWriter, code int, v usecase.CartView) {
	if v.Cart != nil {
		w.Header().Set(CartIDHeader, v.Cart.ID)
	}
	writeJSON(w, code, v)
}

func (h *CartHandler) fail(w http.ResponseWriter, op string, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.log.Error("exit", zap.String("op", op), zap.Int("status", code), zap.Error(err))
	} else {
		h.log.Debug("exit", zap.String("op", op), zap.Int("status", code), zap.Error(err))
	}
	writeUsecaseErr(w, err)
}

// DeliveryOptionsHandler serves GET /mall/delivery-options.
type DeliveryOptionsHandler struct {
	uc *usecase.CartUsecase
}

func NewDeliveryOptionsHandler(uc *usecase.CartUsecase) http.Handler {
	return &DeliveryOptionsHandler{uc: uc}
}

func (h *DeliveryOptionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.uc.DeliveryOptions()})
}
