package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	"github.com/xiebiao/bookworm/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go中有等价的Wire配置，可用wire gen生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化监控指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 依赖注入（手动组装）
	// 依赖链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	catalogRepo := mysql.NewCatalogRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	userRepo := mysql.NewUserRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	catalogCache := redis.NewCatalogCache(redisClient, cfg.Catalog.ShelfCacheTTL)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	catalogService := catalog.NewService(catalogRepo, catalog.PricingPolicy{
		StrictWindow: cfg.Catalog.StrictDiscountWindow,
	})
	reviewService := review.NewService(reviewRepo)
	userService := user.NewService(userRepo)

	// 应用层
	browseBooksUseCase := appcatalog.NewBrowseBooksUseCase(catalogService)
	getBookUseCase := appcatalog.NewGetBookUseCase(catalogService)
	shelvesUseCase := appcatalog.NewShelvesUseCase(catalogService, catalogCache)
	directoryUseCase := appcatalog.NewDirectoryUseCase(catalogService)
	listReviewsUseCase := appreview.NewListReviewsUseCase(reviewService, catalogRepo)
	createReviewUseCase := appreview.NewCreateReviewUseCase(reviewService, catalogRepo)
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)
	getMeUseCase := appuser.NewGetMeUseCase(userService)
	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, txManager)
	addOrderItemUseCase := apporder.NewAddOrderItemUseCase(orderRepo, catalogRepo, txManager)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)

	// 接口层
	bookHandler := handler.NewBookHandler(browseBooksUseCase, getBookUseCase, shelvesUseCase, directoryUseCase)
	reviewHandler := handler.NewReviewHandler(listReviewsUseCase, createReviewUseCase)
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, getMeUseCase)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, addOrderItemUseCase, listOrdersUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(metrics.GinMiddleware())

	// 7. 注册路由
	registerRoutes(r, bookHandler, reviewHandler, userHandler, orderHandler, authMiddleware)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	userHandler *handler.UserHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档（生产环境建议禁用或加访问控制）
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证模块
		auth := v1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
			auth.GET("/me", authMiddleware.RequireAuth(), userHandler.Me)
		}

		// 图书目录（公开接口）
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/recommended", bookHandler.Recommended)
			books.GET("/popular", bookHandler.Popular)
			books.GET("/onsale", bookHandler.OnSale)
			books.GET("/category", bookHandler.BooksByCategory)
			books.GET("/author/:author_id", bookHandler.BooksByAuthor)
			books.GET("/:book_id", bookHandler.GetBook)
		}

		// 作者/分类档案（公开接口）
		v1.GET("/authors", bookHandler.ListAuthors)
		v1.GET("/authors/:author_id", bookHandler.GetAuthor)
		v1.GET("/categories", bookHandler.ListCategories)
		v1.GET("/categories/:category_id", bookHandler.GetCategory)

		// 评论模块
		v1.GET("/reviews/:book_id", reviewHandler.ListReviews)
		v1.POST("/reviews", authMiddleware.RequireAuth(), reviewHandler.CreateReview)

		// 订单模块（需要登录）
		v1.GET("/orders", authMiddleware.RequireAuth(), orderHandler.ListOrders)
		v1.POST("/orders", authMiddleware.RequireAuth(), orderHandler.CreateOrder)
		v1.POST("/order-items", authMiddleware.RequireAuth(), orderHandler.AddOrderItem)
	}
}
