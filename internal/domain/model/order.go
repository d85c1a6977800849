package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// 注文は作成後に遷移しない（決済・配送は対象外）
	OrderStatusPending OrderStatus = "pending"
)

type Order struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName    string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string          `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerAddress string          `gorm:"type:text;not null" json:"customer_address"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	OrderDate       time.Time       `gorm:"not null;autoCreateTime" json:"order_date"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}
