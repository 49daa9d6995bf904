package dto

// CreateOrderRequest HTTP下单请求
type CreateOrderRequest struct {
	OrderAmount int64 `json:"order_amount" binding:"min=0" example:"0"` // 初始金额(分),随明细累加
}

// AddOrderItemRequest HTTP追加订单明细请求
type AddOrderItemRequest struct {
	OrderID  uint  `json:"order_id" binding:"required" example:"1"`
	BookID   uint  `json:"book_id" binding:"required" example:"1"`
	Quantity int   `json:"quantity" binding:"required,min=1,max=999" example:"2"`
	Price    int64 `json:"price" binding:"required,min=1" example:"1500"` // 下单时单价(分)
}

// OrderItemResponse HTTP订单明细响应
type OrderItemResponse struct {
	ID        uint   `json:"id" example:"1"`
	OrderID   uint   `json:"order_id" example:"1"`
	BookID    uint   `json:"book_id" example:"1"`
	Quantity  int    `json:"quantity" example:"2"`
	Price     int64  `json:"price" example:"1500"`
	PriceYuan string `json:"price_yuan" example:"15.00"`
}
