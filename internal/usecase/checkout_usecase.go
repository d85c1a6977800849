package usecase

import (
	"context"
	"net/http"
	"strings"

	"mall/internal/domain/model"
	repo "mall/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutUsecase はカートを注文に確定する。
type CheckoutUsecase struct {
	tx     repo.TransactionManager
	logger *zap.Logger
}

func NewCheckoutUsecase(tx repo.TransactionManager, logger *zap.Logger) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, logger: logger}
}

type CustomerInfo struct {
	Name    string
	Email   string
	Address string
}

// Checkout はカート全行を1注文として確定し、採番された注文IDを返す。
//
// 注文ヘッダ＋全明細＋全在庫減算は1トランザクション：途中で失敗したら
// 何も残さない。検証エラー時はDBに触れず、カートも呼び出し側に残る。
// カートのクリアは呼び出し側（セッション側）の責務。
func (u *CheckoutUsecase) Checkout(ctx context.Context, cart model.Cart, in CustomerInfo) (int64, error) {
	if cart.IsEmpty() {
		return 0, NewHTTPError(http.StatusBadRequest, "Your cart is empty!")
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	address := strings.TrimSpace(in.Address)
	if name == "" || email == "" || address == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "Please fill in all fields!")
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		total := decimal.Zero
		items := make([]model.OrderItem, 0, cart.Len())

		for _, line := range cart.Lines() {
			p, err := r.Products().FindByID(ctx, line.ProductID)
			if err == repo.ErrNotFound {
				// 消えた商品の行は黙って落とす。合計にも明細にも乗らない
				u.logger.Warn("checkout skipped missing product",
					zap.Int64("product_id", line.ProductID),
					zap.String("session_id", cart.SID))
				continue
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//購入時点の商品名・単価をスナップショット
			items = append(items, model.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    line.Quantity,
				Price:       p.Price,
			})
			total = total.Add(p.Price.Mul(decimal.NewFromInt(line.Quantity)))
		}

		id, err := r.Orders().Create(ctx, model.Order{
			CustomerName:    name,
			CustomerEmail:   email,
			CustomerAddress: address,
			TotalAmount:     total,
			Status:          model.OrderStatusPending,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//在庫減算（下限チェック無し、マイナス在庫許容）
		for _, it := range items {
			if err := r.Inventory().DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		orderID = id
		return nil
	})

	if err != nil {
		return 0, err
	}

	u.logger.Info("order placed",
		zap.Int64("order_id", orderID),
		zap.String("session_id", cart.SID))

	return orderID, nil
}
