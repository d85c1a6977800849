package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"mall/internal/domain/model"
	repo "mall/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase はカタログの閲覧・検索。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

// GET / の出力。カテゴリ一覧はフィルタバー用。
type CatalogOutput struct {
	Products        []model.Product `json:"products"`
	Categories      []string        `json:"categories"`
	CurrentCategory string          `json:"current_category"`
	SearchQuery     string          `json:"search_query"`
}

// ListProducts はカテゴリ・検索語で絞った商品一覧と全カテゴリを返す。
func (u *CatalogUsecase) ListProducts(ctx context.Context, category string, search string) (CatalogOutput, error) {
	if category == "" {
		category = "all"
	}

	products, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Category: category,
		Search:   search,
	})
	if err != nil {
		return CatalogOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.productRepo.ListCategories(ctx)
	if err != nil {
		return CatalogOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CatalogOutput{
		Products:        products,
		Categories:      categories,
		CurrentCategory: category,
		SearchQuery:     search,
	}, nil
}

// GetProductDetail は商品詳細。無ければ404。
func (u *CatalogUsecase) GetProductDetail(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found!")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
