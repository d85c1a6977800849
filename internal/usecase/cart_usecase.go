package usecase

import (
	"context"
	"net/http"

	"mall/internal/domain/model"
	repo "mall/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartUsecase はカート表示の業務ロジック。
// カートの中身はセッション値なので、ここでは現在価格とのJOINだけ行う。
type CartUsecase struct {
	productRepo repo.ProductRepository
	logger      *zap.Logger
}

func NewCartUsecase(productRepo repo.ProductRepository, logger *zap.Logger) *CartUsecase {
	return &CartUsecase{productRepo: productRepo, logger: logger}
}

type CartLineResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// ViewCart は各行を現在の商品情報とJOINして返す。
// 小計は常に「今の価格」×数量（確定済み注文のスナップショットとは逆）。
// 商品が消えていた行は一覧からも合計からも黙って落とす。
func (u *CartUsecase) ViewCart(ctx context.Context, cart model.Cart) (CartResponse, error) {
	items := make([]CartLineResponse, 0, cart.Len())
	total := decimal.Zero

	for _, line := range cart.Lines() {
		p, err := u.productRepo.FindByID(ctx, line.ProductID)
		if err == repo.ErrNotFound {
			// 古いカートが消えた商品を指している
			u.logger.Warn("cart references missing product",
				zap.Int64("product_id", line.ProductID),
				zap.String("session_id", cart.SID))
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(line.Quantity))
		items = append(items, CartLineResponse{
			ProductID: p.ID,
			Name:      p.Name,
			ImageURL:  p.ImageURL,
			Price:     p.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	return CartResponse{Items: items, Total: total}, nil
}
