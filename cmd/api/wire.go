//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// Wire在编译期生成依赖组装代码：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appcatalog "github.com/xiebiao/bookworm/internal/application/catalog"
	apporder "github.com/xiebiao/bookworm/internal/application/order"
	appreview "github.com/xiebiao/bookworm/internal/application/review"
	appuser "github.com/xiebiao/bookworm/internal/application/user"
	"github.com/xiebiao/bookworm/internal/domain/catalog"
	"github.com/xiebiao/bookworm/internal/domain/review"
	"github.com/xiebiao/bookworm/internal/domain/user"
	"github.com/xiebiao/bookworm/internal/infrastructure/config"
	"github.com/xiebiao/bookworm/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookworm/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookworm/internal/interface/http/handler"
	"github.com/xiebiao/bookworm/internal/interface/http/middleware"
	"github.com/xiebiao/bookworm/pkg/jwt"
	"github.com/xiebiao/bookworm/pkg/metrics"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewCatalogRepository, // 目录仓储
	mysql.NewReviewRepository,  // 评论仓储
	mysql.NewUserRepository,    // 用户仓储
	mysql.NewOrderRepository,   // 订单仓储
	mysql.NewTxManager,         // 事务管理器
	wire.Bind(new(apporder.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	provideCatalogService, // 目录查询引擎（定价策略来自配置）
	review.NewService,     // 评论领域服务
	user.NewService,       // 用户领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcatalog.NewBrowseBooksUseCase,
	appcatalog.NewGetBookUseCase,
	appcatalog.NewDirectoryUseCase,
	provideShelvesUseCase,
	appreview.NewListReviewsUseCase,
	appreview.NewCreateReviewUseCase,
	appuser.NewRegisterUseCase,
	provideLoginUseCase,
	provideLogoutUseCase,
	appuser.NewGetMeUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewAddOrderItemUseCase,
	apporder.NewListOrdersUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	wire.Bind(new(middleware.TokenBlacklist), new(*redis.SessionStore)),
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewReviewHandler,
	handler.NewUserHandler,
	handler.NewOrderHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideCatalogService 从配置组装目录查询引擎
func provideCatalogService(cfg *config.Config, repo catalog.Repository) catalog.Service {
	return catalog.NewService(repo, catalog.PricingPolicy{
		StrictWindow: cfg.Catalog.StrictDiscountWindow,
	})
}

// provideShelvesUseCase 带Redis缓存的货架用例
func provideShelvesUseCase(
	cfg *config.Config,
	catalogService catalog.Service,
	client *goredis.Client,
) *appcatalog.ShelvesUseCase {
	cache := redis.NewCatalogCache(client, cfg.Catalog.ShelfCacheTTL)
	return appcatalog.NewShelvesUseCase(catalogService, cache)
}

// provideLoginUseCase 会话有效期取Refresh Token有效期
func provideLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
	cfg *config.Config,
) *appuser.LoginUseCase {
	return appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
}

// provideLogoutUseCase 黑名单有效期取Access Token有效期
func provideLogoutUseCase(sessionStore *redis.SessionStore, cfg *config.Config) *appuser.LogoutUseCase {
	return appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	userHandler *handler.UserHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.InitMetrics()

	r := gin.Default()
	r.Use(metrics.GinMiddleware())

	registerRoutes(r, bookHandler, reviewHandler, userHandler, orderHandler, authMiddleware)

	return r
}

// InitializeApp 初始化整个应用
// wire.Build会在编译期分析依赖关系并在wire_gen.go中生成组装代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
