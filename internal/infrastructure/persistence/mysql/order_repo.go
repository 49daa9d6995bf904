package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookworm/internal/domain/order"
	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 所有方法通过getDB取数,处于事务中时自动使用事务DB
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// CreateOrder 创建订单
func (r *orderRepository) CreateOrder(ctx context.Context, o *order.Order) error {
	model := &OrderModel{
		UserID:    o.UserID,
		OrderDate: o.OrderDate,
		Amount:    o.Amount,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	o.ID = model.ID
	return nil
}

// FindOrderByID 按ID查询订单
func (r *orderRepository) FindOrderByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// ListOrdersByUser 查询用户全部订单
func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	var models []OrderModel
	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("order_date DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, nil
}

// UpdateOrderAmount 更新订单总金额
func (r *orderRepository) UpdateOrderAmount(ctx context.Context, orderID uint, amount int64) error {
	result := getDB(ctx, r.db).Model(&OrderModel{}).
		Where("id = ?", orderID).
		Update("amount", amount)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单金额失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// CreateItem 写入订单明细
func (r *orderRepository) CreateItem(ctx context.Context, item *order.OrderItem) error {
	model := &OrderItemModel{
		OrderID:  item.OrderID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
		Price:    item.Price,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单明细失败")
	}

	item.ID = model.ID
	return nil
}

// ListItemsByOrder 查询订单全部明细
func (r *orderRepository) ListItemsByOrder(ctx context.Context, orderID uint) ([]*order.OrderItem, error) {
	var models []OrderItemModel
	err := getDB(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单明细失败")
	}

	items := make([]*order.OrderItem, len(models))
	for i := range models {
		items[i] = toOrderItemEntity(&models[i])
	}
	return items, nil
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	return &order.Order{
		ID:        model.ID,
		UserID:    model.UserID,
		OrderDate: model.OrderDate,
		Amount:    model.Amount,
	}
}

// toOrderItemEntity GORM模型 → 领域实体
func toOrderItemEntity(model *OrderItemModel) *order.OrderItem {
	return &order.OrderItem{
		ID:       model.ID,
		OrderID:  model.OrderID,
		BookID:   model.BookID,
		Quantity: model.Quantity,
		Price:    model.Price,
	}
}
