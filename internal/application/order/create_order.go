package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookworm/internal/domain/order"
	"github.com/xiebiao/bookworm/pkg/metrics"
)

// TxManager 事务边界抽象,由mysql.TxManager实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateOrderUseCase 创建订单用例
type CreateOrderUseCase struct {
	orderRepo order.Repository
	txManager TxManager
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(orderRepo order.Repository, txManager TxManager) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		txManager: txManager,
	}
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	UserID      uint  // 买家用户ID(从JWT中提取)
	OrderAmount int64 // 订单金额(分),后续随明细累加
}

// CreateOrderResponse 下单响应
type CreateOrderResponse struct {
	OrderID   uint   `json:"order_id"`
	Amount    int64  `json:"amount"`
	OrderDate string `json:"order_date"`
}

// Execute 执行下单
// 订单归属与下单时间由服务端决定,不信任客户端传值
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	newOrder := &order.Order{
		UserID:    req.UserID,
		OrderDate: time.Now(),
		Amount:    req.OrderAmount,
	}

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.orderRepo.CreateOrder(txCtx, newOrder)
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()

	return &CreateOrderResponse{
		OrderID:   newOrder.ID,
		Amount:    newOrder.Amount,
		OrderDate: newOrder.OrderDate.Format("2006-01-02 15:04:05"),
	}, nil
}
