package model

import "sort"

// Cart はセッションに載るカート（商品ID→数量）。
// 操作はすべて値セマンティクス：新しいCartを返し、呼び出し側が
// セッションへ書き戻す。その場の変更が無いのでdirtyフラグも不要。
// 不変条件：数量0以下のエントリは保持しない（削除する）。
type Cart struct {
	SID   string
	Items map[int64]int64
}

// CartLine はカート1行分。
type CartLine struct {
	ProductID int64
	Quantity  int64
}

func NewCart(sid string) Cart {
	return Cart{SID: sid, Items: map[int64]int64{}}
}

func (c Cart) clone() Cart {
	items := make(map[int64]int64, len(c.Items))
	for id, qty := range c.Items {
		items[id] = qty
	}
	return Cart{SID: c.SID, Items: items}
}

// Add は数量を加算する（既存エントリがあれば合算、無ければ追加）。
// 合算結果が0以下になった場合はエントリごと消す。
func (c Cart) Add(productID int64, qty int64) Cart {
	next := c.clone()
	n := next.Items[productID] + qty
	if n <= 0 {
		delete(next.Items, productID)
	} else {
		next.Items[productID] = n
	}
	return next
}

// WithQuantity は数量を上書きする。0以下はエントリ削除。
func (c Cart) WithQuantity(productID int64, qty int64) Cart {
	next := c.clone()
	if qty <= 0 {
		delete(next.Items, productID)
	} else {
		next.Items[productID] = qty
	}
	return next
}

// Without はエントリを外す。無ければ何もしない。
func (c Cart) Without(productID int64) Cart {
	next := c.clone()
	delete(next.Items, productID)
	return next
}

// Cleared は同じセッションの空カートを返す。
func (c Cart) Cleared() Cart {
	return Cart{SID: c.SID, Items: map[int64]int64{}}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Len() int {
	return len(c.Items)
}

func (c Cart) Quantity(productID int64) int64 {
	return c.Items[productID]
}

// Lines は商品ID昇順で返す（走査順を安定させる）。
func (c Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.Items))
	for id, qty := range c.Items {
		lines = append(lines, CartLine{ProductID: id, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines
}
