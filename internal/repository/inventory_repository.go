package repository

import "context"

type InventoryRepository interface {
	// 無条件減算。下限チェックは無く、在庫はマイナスになり得る。
	DecrementStock(ctx context.Context, productID int64, qty int64) error
}
