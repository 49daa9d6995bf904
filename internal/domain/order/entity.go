package order

import (
	"time"
)

// Order 订单
// Amount为订单总金额(分),由订单明细的 实际售价×数量 累加而来
type Order struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	OrderDate time.Time `json:"order_date"`
	Amount    int64     `json:"amount"`
}

// OrderItem 订单明细
// Price为下单时刻的实际售价快照(分),后续折扣变动不影响已下单金额
type OrderItem struct {
	ID       uint  `json:"id"`
	OrderID  uint  `json:"order_id"`
	BookID   uint  `json:"book_id"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
}
