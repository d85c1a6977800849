package handler

import (
	"net/http"
	"strconv"

	"mall/internal/session"
	"mall/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カートのHTTP。カート本体はセッション値なので、ここで
// Load→操作→Saveを必ずワンセットで行う。
type CartHandler struct {
	uc    *usecase.CartUsecase
	store *session.CartStore
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, store *session.CartStore) *CartHandler {
	return &CartHandler{uc: uc, store: store}
}

// カート操作の応答：通知メッセージ＋最新のカート表示
type CartMutationResponse struct {
	Message string               `json:"message"`
	Cart    usecase.CartResponse `json:"cart"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/add_to_cart/:id", h.addToCart)
	e.GET("/cart", h.viewCart)
	e.POST("/update_cart/:id", h.updateCart)
	e.GET("/remove_from_cart/:id", h.removeFromCart)
	e.GET("/clear_cart", h.clearCart)
}

// quantityフォーム値。無い・読めないときは1。
func parseQuantity(c echo.Context) int64 {
	v := c.FormValue("quantity")
	if v == "" {
		return 1
	}
	qty, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 1
	}
	return qty
}

// POST /add_to_cart/:id
func (h *CartHandler) addToCart(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	cart := h.store.Load(c)
	cart = cart.Add(id, parseQuantity(c))
	if err := h.store.Save(c, cart); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	out, err := h.uc.ViewCart(c.Request().Context(), cart)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartMutationResponse{
		Message: "Product added to cart!",
		Cart:    out,
	})
}

// GET /cart
func (h *CartHandler) viewCart(c echo.Context) error {
	cart := h.store.Load(c)

	out, err := h.uc.ViewCart(c.Request().Context(), cart)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// POST /update_cart/:id（quantity 0以下で行削除）
func (h *CartHandler) updateCart(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	cart := h.store.Load(c)
	cart = cart.WithQuantity(id, parseQuantity(c))
	if err := h.store.Save(c, cart); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	out, err := h.uc.ViewCart(c.Request().Context(), cart)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartMutationResponse{
		Message: "Cart updated!",
		Cart:    out,
	})
}

// GET /remove_from_cart/:id
func (h *CartHandler) removeFromCart(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	cart := h.store.Load(c)
	cart = cart.Without(id)
	if err := h.store.Save(c, cart); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	out, err := h.uc.ViewCart(c.Request().Context(), cart)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartMutationResponse{
		Message: "Product removed from cart!",
		Cart:    out,
	})
}

// GET /clear_cart
func (h *CartHandler) clearCart(c echo.Context) error {
	cart := h.store.Load(c)
	cart = cart.Cleared()
	if err := h.store.Save(c, cart); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Cart cleared!"})
}
