package handler

import (
	"fmt"
	"net/http"

	"mall/internal/session"
	"mall/internal/usecase"

	"github.com/labstack/echo/v4"
)

// チェックアウトのHTTP
type CheckoutHandler struct {
	checkoutUC *usecase.CheckoutUsecase
	cartUC     *usecase.CartUsecase
	store      *session.CartStore
}

// DI
func NewCheckoutHandler(checkoutUC *usecase.CheckoutUsecase, cartUC *usecase.CartUsecase, store *session.CartStore) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC, cartUC: cartUC, store: store}
}

type CheckoutResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/checkout", h.preview)
	e.POST("/checkout", h.checkout)
}

// GET /checkout：確定前のカートサマリ（表示は現在価格）
func (h *CheckoutHandler) preview(c echo.Context) error {
	cart := h.store.Load(c)
	if cart.IsEmpty() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Your cart is empty!"})
	}

	out, err := h.cartUC.ViewCart(c.Request().Context(), cart)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// POST /checkout（form: name, email, address）
// 成功時だけセッションのカートを空にする。失敗時はカートも入力前の
// 状態のまま残り、呼び出し側はフォームを再表示できる。
func (h *CheckoutHandler) checkout(c echo.Context) error {
	cart := h.store.Load(c)

	in := usecase.CustomerInfo{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Address: c.FormValue("address"),
	}

	orderID, err := h.checkoutUC.Checkout(c.Request().Context(), cart, in)
	if err != nil {
		return writeError(c, err)
	}

	// 注文は確定済みなので、ここでSaveが失敗しても応答は成功のまま
	_ = h.store.Save(c, cart.Cleared())

	return c.JSON(http.StatusOK, CheckoutResponse{
		OrderID: orderID,
		Message: fmt.Sprintf("Order #%d placed successfully! Thank you for your purchase!", orderID),
	})
}
