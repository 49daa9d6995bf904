package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookworm/internal/application/order"
	"github.com/xiebiao/bookworm/internal/interface/http/dto"
	"github.com/xiebiao/bookworm/internal/interface/http/middleware"
	"github.com/xiebiao/bookworm/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createOrderUseCase  *apporder.CreateOrderUseCase
	addOrderItemUseCase *apporder.AddOrderItemUseCase
	listOrdersUseCase   *apporder.ListOrdersUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createOrderUseCase *apporder.CreateOrderUseCase,
	addOrderItemUseCase *apporder.AddOrderItemUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrderUseCase:  createOrderUseCase,
		addOrderItemUseCase: addOrderItemUseCase,
		listOrdersUseCase:   listOrdersUseCase,
	}
}

// CreateOrder 创建订单
// @Summary      创建订单
// @Description  订单归属与下单时间由服务端决定
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "订单信息"
// @Success      201 {object} response.Response{data=apporder.CreateOrderResponse}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.createOrderUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID:      userID,
		OrderAmount: req.OrderAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListOrders 查询我的订单
// @Summary      我的订单列表
// @Description  返回当前用户的全部订单及明细,按下单时间降序
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]apporder.OrderView}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	orders, err := h.listOrdersUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, orders)
}

// AddOrderItem 追加订单明细
// @Summary      追加订单明细
// @Description  订单必须属于当前用户,明细写入与金额更新在同一事务中
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddOrderItemRequest true "明细信息"
// @Success      201 {object} response.Response{data=dto.OrderItemResponse}
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "订单或图书不存在"
// @Router       /api/v1/order-items [post]
func (h *OrderHandler) AddOrderItem(c *gin.Context) {
	var req dto.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	item, err := h.addOrderItemUseCase.Execute(c.Request.Context(), apporder.AddOrderItemRequest{
		UserID:   userID,
		OrderID:  req.OrderID,
		BookID:   req.BookID,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.OrderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		BookID:    item.BookID,
		Quantity:  item.Quantity,
		Price:     item.Price,
		PriceYuan: dto.FormatPriceYuan(item.Price),
	})
}
