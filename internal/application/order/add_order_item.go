package order

import (
	"context"

	"github.com/xiebiao/bookworm/internal/domain/catalog"
	"github.com/xiebiao/bookworm/internal/domain/order"
)

// AddOrderItemUseCase 追加订单明细用例
// 设计说明:
// 1. 订单必须存在且属于当前用户,否则一律返回ErrOrderNotFound
//    (不区分"不存在"与"不属于你",避免暴露他人订单ID)
// 2. 明细写入与订单金额更新在同一事务中,失败整体回滚
type AddOrderItemUseCase struct {
	orderRepo   order.Repository
	catalogRepo catalog.Repository
	txManager   TxManager
}

// NewAddOrderItemUseCase 创建追加明细用例
func NewAddOrderItemUseCase(
	orderRepo order.Repository,
	catalogRepo catalog.Repository,
	txManager TxManager,
) *AddOrderItemUseCase {
	return &AddOrderItemUseCase{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
	}
}

// AddOrderItemRequest 追加明细请求
type AddOrderItemRequest struct {
	UserID   uint // 从JWT中提取
	OrderID  uint
	BookID   uint
	Quantity int
	Price    int64 // 下单时单价快照(分)
}

// Execute 执行追加明细
func (uc *AddOrderItemUseCase) Execute(ctx context.Context, req AddOrderItemRequest) (*order.OrderItem, error) {
	if req.Quantity <= 0 {
		return nil, order.ErrInvalidQuantity
	}

	item := &order.OrderItem{
		OrderID:  req.OrderID,
		BookID:   req.BookID,
		Quantity: req.Quantity,
		Price:    req.Price,
	}

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.FindOrderByID(txCtx, req.OrderID)
		if err != nil {
			return err
		}
		if o.UserID != req.UserID {
			return order.ErrOrderNotFound
		}

		if _, err := uc.catalogRepo.FindBookByID(txCtx, req.BookID); err != nil {
			return err
		}

		if err := uc.orderRepo.CreateItem(txCtx, item); err != nil {
			return err
		}

		// 订单金额随明细累加
		amount := o.Amount + req.Price*int64(req.Quantity)
		return uc.orderRepo.UpdateOrderAmount(txCtx, req.OrderID, amount)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}
