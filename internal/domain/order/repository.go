package order

import (
	"context"
)

// Repository 订单仓储接口
// 写操作需在TxManager事务内调用,仓储实现从context中取事务句柄
type Repository interface {
	// CreateOrder 创建订单
	CreateOrder(ctx context.Context, o *Order) error

	// FindOrderByID 按ID查询订单,不存在返回ErrOrderNotFound
	FindOrderByID(ctx context.Context, id uint) (*Order, error)

	// ListOrdersByUser 查询用户全部订单,按下单时间降序
	ListOrdersByUser(ctx context.Context, userID uint) ([]*Order, error)

	// UpdateOrderAmount 更新订单总金额
	UpdateOrderAmount(ctx context.Context, orderID uint, amount int64) error

	// CreateItem 写入订单明细
	CreateItem(ctx context.Context, item *OrderItem) error

	// ListItemsByOrder 查询订单全部明细
	ListItemsByOrder(ctx context.Context, orderID uint) ([]*OrderItem, error)
}
