package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcart "github.com/xiebiao/estore/internal/application/cart"
	appcheckout "github.com/xiebiao/estore/internal/application/checkout"
	apporder "github.com/xiebiao/estore/internal/application/order"
	appproduct "github.com/xiebiao/estore/internal/application/product"
	appuser "github.com/xiebiao/estore/internal/application/user"
	"github.com/xiebiao/estore/internal/domain/product"
	"github.com/xiebiao/estore/internal/domain/user"
	"github.com/xiebiao/estore/internal/infrastructure/config"
	"github.com/xiebiao/estore/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/estore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/estore/internal/interface/http/handler"
	"github.com/xiebiao/estore/internal/interface/http/middleware"
	"github.com/xiebiao/estore/pkg/circuitbreaker"
	"github.com/xiebiao/estore/pkg/jwt"
	"github.com/xiebiao/estore/pkg/metrics"
	"github.com/xiebiao/estore/pkg/mq"
	"github.com/xiebiao/estore/pkg/response"
	"github.com/xiebiao/estore/pkg/tracing"
)

// main 主程序入口
// 说明：手动依赖注入(wire.go提供编译期注入的等价配置)
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

	// 2. 初始化指标
	metrics.InitMetrics()

	// 3. 初始化链路追踪(未启用时为no-op)
	shutdownTracer, err := tracing.InitTracer(context.Background(), "estore-api", tracingEndpoint(cfg))
	if err != nil {
		log.Fatalf("初始化Tracing失败: %v", err)
	}

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 6. 初始化消息队列(可选)
	var publisher *mq.Publisher
	if cfg.MQ.Enabled {
		publisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化RabbitMQ失败: %v", err)
		}
		fmt.Println("✓ RabbitMQ连接成功")
	}

	// 7. 依赖注入(手动组装)
	// 依赖链:Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	productCache := redis.NewProductCache(redisClient)
	idemStore := redis.NewIdempotencyStore(redisClient)
	cacheBreaker := circuitbreaker.New(circuitbreaker.DefaultOptions())
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	productService := product.NewService(productRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	getUserUseCase := appuser.NewGetUserUseCase(userService)
	listUsersUseCase := appuser.NewListUsersUseCase(userService)
	updateUserUseCase := appuser.NewUpdateUserUseCase(userService)

	createProductUseCase := appproduct.NewCreateProductUseCase(productService)
	getProductUseCase := appproduct.NewGetProductUseCase(productService, productCache, cacheBreaker)
	listProductsUseCase := appproduct.NewListProductsUseCase(productService)
	updateProductUseCase := appproduct.NewUpdateProductUseCase(productService, productCache, cacheBreaker)
	deleteProductUseCase := appproduct.NewDeleteProductUseCase(productService, productCache, cacheBreaker)

	addItemUseCase := appcart.NewAddItemUseCase(cartRepo, productService)
	listCartUseCase := appcart.NewListCartUseCase(cartRepo)
	updateItemUseCase := appcart.NewUpdateItemUseCase(cartRepo)
	removeItemUseCase := appcart.NewRemoveItemUseCase(cartRepo)

	checkoutUseCase := appcheckout.NewCheckoutUseCase(
		cartRepo, productRepo, orderRepo, txManager,
		checkoutPublisher(publisher), idemStore,
	)

	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)

	// 接口层
	userHandler := handler.NewUserHandler(
		registerUseCase, loginUseCase, logoutUseCase,
		getUserUseCase, listUsersUseCase, updateUserUseCase,
	)
	productHandler := handler.NewProductHandler(
		createProductUseCase, getProductUseCase, listProductsUseCase,
		updateProductUseCase, deleteProductUseCase,
	)
	cartHandler := handler.NewCartHandler(
		addItemUseCase, listCartUseCase, updateItemUseCase, removeItemUseCase,
	)
	checkoutHandler := handler.NewCheckoutHandler(checkoutUseCase)
	orderHandler := handler.NewOrderHandler(listOrdersUseCase, getOrderUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}

	// 9. 注册路由
	registerRoutes(r, userHandler, productHandler, cartHandler, checkoutHandler, orderHandler, authMiddleware)

	// 10. 启动服务(优雅停机)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", srv.Addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", srv.Addr)
		fmt.Printf("   接口文档: http://localhost%s/swagger/index.html\n", srv.Addr)
		fmt.Printf("   指标采集: http://localhost%s/metrics\n", srv.Addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("\n正在停止服务...")

	// 限时等待在途请求处理完成
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("停止HTTP服务失败: %v", err)
	}

	// 依次关闭外部连接
	if publisher != nil {
		publisher.Close()
	}
	if err := redisClient.Close(); err != nil {
		log.Printf("关闭Redis连接失败: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("关闭数据库连接失败: %v", err)
		}
	}
	if err := shutdownTracer(context.Background()); err != nil {
		log.Printf("关闭Tracer失败: %v", err)
	}

	fmt.Println("服务已停止")
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
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
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", authMiddleware.RequireAuth(), userHandler.UpdateUser)
		}

		// 商品模块
		products := v1.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// 购物车模块(含结算)
		cart := v1.Group("/cart/:userId")
		{
			cart.GET("", cartHandler.ListCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:lineId", cartHandler.UpdateItem)
			cart.DELETE("/items/:lineId", cartHandler.RemoveItem)
			cart.POST("/checkout", checkoutHandler.Checkout)
		}

		// 订单模块(只读,订单由结算产生)
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}
	}
}

// tracingEndpoint 未启用Tracing时返回空串,InitTracer会安装no-op Provider
func tracingEndpoint(cfg *config.Config) string {
	if !cfg.Tracing.Enabled {
		return ""
	}
	return cfg.Tracing.Endpoint
}

// checkoutPublisher 避免把非nil接口包着nil指针传给用例
func checkoutPublisher(p *mq.Publisher) appcheckout.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}
