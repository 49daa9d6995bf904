package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporder "github.com/xiebiao/bookworm/internal/application/order"
	appreview "github.com/xiebiao/bookworm/internal/application/review"
	"github.com/xiebiao/bookworm/internal/domain/catalog"
	"github.com/xiebiao/bookworm/internal/domain/order"
	"github.com/xiebiao/bookworm/internal/domain/review"
	"github.com/xiebiao/bookworm/internal/interface/http/middleware"
	"github.com/xiebiao/bookworm/pkg/jwt"
	"github.com/xiebiao/bookworm/pkg/metrics"
)

// fakeBlacklist 永不命中的黑名单
type fakeBlacklist struct{}

func (fakeBlacklist) IsInBlacklist(context.Context, string) (bool, error) {
	return false, nil
}

// fakeTx 直接执行fn,不开事务
type fakeTx struct{}

func (fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeCatalogRepo 只认图书1
type fakeCatalogRepo struct{}

func (fakeCatalogRepo) ListBooks(context.Context, catalog.Filter) ([]*catalog.BookRecord, error) {
	return nil, nil
}

func (fakeCatalogRepo) FindBookByID(_ context.Context, id uint) (*catalog.BookRecord, error) {
	if id != 1 {
		return nil, catalog.ErrBookNotFound
	}
	return &catalog.BookRecord{
		Book:   catalog.Book{ID: 1, Title: "book", Price: 2000},
		Author: catalog.Author{ID: 1, Name: "author"},
	}, nil
}

func (fakeCatalogRepo) ListAuthors(context.Context) ([]*catalog.Author, error) { return nil, nil }
func (fakeCatalogRepo) FindAuthorByID(context.Context, uint) (*catalog.Author, error) {
	return nil, catalog.ErrAuthorNotFound
}
func (fakeCatalogRepo) ListCategories(context.Context) ([]*catalog.Category, error) {
	return nil, nil
}
func (fakeCatalogRepo) FindCategoryByID(context.Context, uint) (*catalog.Category, error) {
	return nil, catalog.ErrCategoryNotFound
}

// fakeReviewRepo 内存评论存储
type fakeReviewRepo struct {
	created []*review.Review
}

func (f *fakeReviewRepo) ListByBook(context.Context, uint) ([]*review.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, r *review.Review) error {
	r.ID = uint(len(f.created) + 1)
	f.created = append(f.created, r)
	return nil
}

// fakeOrderRepo 只有用户10的订单1
type fakeOrderRepo struct {
	items []*order.OrderItem
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, o *order.Order) error {
	o.ID = 1
	return nil
}

func (f *fakeOrderRepo) FindOrderByID(_ context.Context, id uint) (*order.Order, error) {
	if id != 1 {
		return nil, order.ErrOrderNotFound
	}
	return &order.Order{ID: 1, UserID: 10, OrderDate: time.Now()}, nil
}

func (f *fakeOrderRepo) ListOrdersByUser(_ context.Context, userID uint) ([]*order.Order, error) {
	if userID != 10 {
		return nil, nil
	}
	return []*order.Order{{ID: 1, UserID: 10, OrderDate: time.Now(), Amount: 3000}}, nil
}

func (f *fakeOrderRepo) UpdateOrderAmount(context.Context, uint, int64) error { return nil }

func (f *fakeOrderRepo) CreateItem(_ context.Context, item *order.OrderItem) error {
	item.ID = uint(len(f.items) + 1)
	f.items = append(f.items, item)
	return nil
}

func (f *fakeOrderRepo) ListItemsByOrder(_ context.Context, orderID uint) ([]*order.OrderItem, error) {
	var out []*order.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

// newTestRouter 受保护路由的最小路由表
func newTestRouter(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	metrics.InitMetrics()

	jwtManager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, fakeBlacklist{})

	reviewService := review.NewService(&fakeReviewRepo{})
	reviewHandler := NewReviewHandler(
		appreview.NewListReviewsUseCase(reviewService, fakeCatalogRepo{}),
		appreview.NewCreateReviewUseCase(reviewService, fakeCatalogRepo{}),
	)

	orderRepo := &fakeOrderRepo{}
	orderHandler := NewOrderHandler(
		apporder.NewCreateOrderUseCase(orderRepo, fakeTx{}),
		apporder.NewAddOrderItemUseCase(orderRepo, fakeCatalogRepo{}, fakeTx{}),
		apporder.NewListOrdersUseCase(orderRepo),
	)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/reviews", authMiddleware.RequireAuth(), reviewHandler.CreateReview)
	v1.GET("/orders", authMiddleware.RequireAuth(), orderHandler.ListOrders)
	v1.POST("/orders", authMiddleware.RequireAuth(), orderHandler.CreateOrder)
	v1.POST("/order-items", authMiddleware.RequireAuth(), orderHandler.AddOrderItem)
	return r, jwtManager
}

// doJSON 发送JSON请求
func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, m *jwt.Manager, userID uint, email string) string {
	t.Helper()
	pair, err := m.GenerateToken(userID, email)
	require.NoError(t, err)
	return pair.AccessToken
}

func TestCreateReview_Unauthorized(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/reviews",
		`{"book_id":1,"review_title":"好书","rating_star":5}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"),
		"401响应必须携带认证质询头")
}

func TestCreateReview_InvalidToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/reviews",
		`{"book_id":1,"review_title":"好书","rating_star":5}`, "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestCreateReview_Success(t *testing.T) {
	r, m := newTestRouter(t)
	token := tokenFor(t, m, 10, "user@example.com")

	w := doJSON(r, http.MethodPost, "/api/v1/reviews",
		`{"book_id":1,"review_title":"好书","rating_star":5}`, token)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Rating string `json:"rating_star"`
			UserID *uint  `json:"user_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "5", resp.Data.Rating)
	require.NotNil(t, resp.Data.UserID)
	assert.Equal(t, uint(10), *resp.Data.UserID, "评论归属取自Token而不是请求体")
}

func TestCreateReview_BookNotFound(t *testing.T) {
	r, m := newTestRouter(t)
	token := tokenFor(t, m, 10, "user@example.com")

	w := doJSON(r, http.MethodPost, "/api/v1/reviews",
		`{"book_id":99,"review_title":"好书","rating_star":5}`, token)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddOrderItem_NotOwner(t *testing.T) {
	r, m := newTestRouter(t)
	// 订单1属于用户10,用户20访问应当视为订单不存在
	token := tokenFor(t, m, 20, "other@example.com")

	w := doJSON(r, http.MethodPost, "/api/v1/order-items",
		`{"order_id":1,"book_id":1,"quantity":2,"price":1500}`, token)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddOrderItem_Owner(t *testing.T) {
	r, m := newTestRouter(t)
	token := tokenFor(t, m, 10, "user@example.com")

	w := doJSON(r, http.MethodPost, "/api/v1/order-items",
		`{"order_id":1,"book_id":1,"quantity":2,"price":1500}`, token)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAddOrderItem_BookNotFound(t *testing.T) {
	r, m := newTestRouter(t)
	token := tokenFor(t, m, 10, "user@example.com")

	w := doJSON(r, http.MethodPost, "/api/v1/order-items",
		`{"order_id":1,"book_id":99,"quantity":2,"price":1500}`, token)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrder_Success(t *testing.T) {
	r, m := newTestRouter(t)
	token := tokenFor(t, m, 10, "user@example.com")

	w := doJSON(r, http.MethodPost, "/api/v1/orders", `{"order_amount":0}`, token)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListOrders(t *testing.T) {
	r, m := newTestRouter(t)
	token := tokenFor(t, m, 10, "user@example.com")

	// 先追加一条明细,再查询应能看到订单与明细
	w := doJSON(r, http.MethodPost, "/api/v1/order-items",
		`{"order_id":1,"book_id":1,"quantity":2,"price":1500}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/orders", "", token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			OrderID uint `json:"order_id"`
			Items   []struct {
				BookID   uint `json:"book_id"`
				Quantity int  `json:"quantity"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, uint(1), resp.Data[0].OrderID)
	require.Len(t, resp.Data[0].Items, 1)
	assert.Equal(t, uint(1), resp.Data[0].Items[0].BookID)
	assert.Equal(t, 2, resp.Data[0].Items[0].Quantity)
}

func TestListOrders_Empty(t *testing.T) {
	r, m := newTestRouter(t)
	// 用户20没有任何订单,应返回空列表而不是错误
	token := tokenFor(t, m, 20, "other@example.com")

	w := doJSON(r, http.MethodGet, "/api/v1/orders", "", token)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}
