package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"mall/internal/domain/model"
	"mall/internal/handler"
	repo "mall/internal/repository"
	"mall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderServer(t *testing.T) (*echo.Echo, *CheckoutOrderRepoMock, *CheckoutOrderItemRepoMock) {
	t.Helper()

	oRepo := new(CheckoutOrderRepoMock)
	iRepo := new(CheckoutOrderItemRepoMock)
	h := handler.NewOrderHandler(usecase.NewOrderUsecase(oRepo, iRepo))

	e := echo.New()
	h.RegisterRoutes(e)
	return e, oRepo, iRepo
}

func TestOrderConfirmation(t *testing.T) {
	e, oRepo, iRepo := newOrderServer(t)
	oRepo.On("FindByID", mock.Anything, int64(42)).Return(model.Order{
		ID:           42,
		CustomerName: "John Doe",
		TotalAmount:  mustPrice("1999.98"),
		Status:       model.OrderStatusPending,
	}, nil)
	iRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{
		{ID: 1, OrderID: 42, ProductID: 1, ProductName: "iPhone 14 Pro", Quantity: 2, Price: mustPrice("999.99")},
	}, nil)

	rec := doForm(e, http.MethodGet, "/order/42", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.OrderOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(42), out.ID)
	assert.Len(t, out.Items, 1)
	assert.True(t, out.TotalAmount.Equal(mustPrice("1999.98")))
}

func TestOrderConfirmation_NotFound(t *testing.T) {
	e, oRepo, _ := newOrderServer(t)
	oRepo.On("FindByID", mock.Anything, int64(999)).
		Return(model.Order{}, repo.ErrNotFound)

	rec := doForm(e, http.MethodGet, "/order/999", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
