package repository

import (
	"context"
	"errors"

	"mall/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Category string // ""または"all"は全カテゴリ
	Search   string // 商品名の部分一致。空は全件
}

// 商品の永続化（取得のみ。作成はシードが担う）を約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}
