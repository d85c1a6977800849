package usecase_test

import (
	"context"
	"testing"

	"mall/internal/domain/model"
	repo "mall/internal/repository"
	"mall/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestViewCart_Empty(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(pRepo, zap.NewNop())

	out, err := uc.ViewCart(context.Background(), model.NewCart("sid"))

	assert.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.Total.IsZero())
}

func TestViewCart_LivePricing(t *testing.T) {
	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "iPhone 14 Pro", Price: price("999.99")}, nil)
	pRepo.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "AirPods Pro", Price: price("249.99")}, nil)

	uc := usecase.NewCartUsecase(pRepo, zap.NewNop())
	cart := model.NewCart("sid").Add(1, 2).Add(3, 1)

	out, err := uc.ViewCart(context.Background(), cart)

	assert.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Subtotal.Equal(price("1999.98")))
	assert.True(t, out.Items[1].Subtotal.Equal(price("249.99")))
	assert.True(t, out.Total.Equal(price("2249.97")))
}

func TestViewCart_OmitsMissingProduct(t *testing.T) {
	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "iPhone 14 Pro", Price: price("999.99")}, nil)
	pRepo.On("FindByID", mock.Anything, int64(99)).
		Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewCartUsecase(pRepo, zap.NewNop())
	cart := model.NewCart("sid").Add(1, 1).Add(99, 4)

	out, err := uc.ViewCart(context.Background(), cart)

	// 消えた商品の行は一覧からも合計からも黙って落ちる
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].ProductID)
	assert.True(t, out.Total.Equal(price("999.99")))
}
