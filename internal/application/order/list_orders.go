package order

import (
	"context"

	"github.com/xiebiao/bookworm/internal/domain/order"
)

// ListOrdersUseCase 查询我的订单用例
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单查询用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// OrderItemView 订单明细视图
type OrderItemView struct {
	ID       uint  `json:"id"`
	BookID   uint  `json:"book_id"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
}

// OrderView 订单视图(含全部明细)
type OrderView struct {
	OrderID   uint            `json:"order_id"`
	Amount    int64           `json:"amount"`
	OrderDate string          `json:"order_date"`
	Items     []OrderItemView `json:"items"`
}

// Execute 查询当前用户的全部订单,按下单时间降序
// 没有订单时返回空列表而不是错误
func (uc *ListOrdersUseCase) Execute(ctx context.Context, userID uint) ([]*OrderView, error) {
	orders, err := uc.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		items, err := uc.orderRepo.ListItemsByOrder(ctx, o.ID)
		if err != nil {
			return nil, err
		}

		itemViews := make([]OrderItemView, 0, len(items))
		for _, item := range items {
			itemViews = append(itemViews, OrderItemView{
				ID:       item.ID,
				BookID:   item.BookID,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}

		views = append(views, &OrderView{
			OrderID:   o.ID,
			Amount:    o.Amount,
			OrderDate: o.OrderDate.Format("2006-01-02 15:04:05"),
			Items:     itemViews,
		})
	}

	return views, nil
}
