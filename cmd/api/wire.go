//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeHandlers()

package main

import (
	"github.com/google/wire"

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
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
	provideJWTManager,
	provideBreaker,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewProductRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
	redis.NewSessionStore,
	redis.NewProductCache,
	redis.NewIdempotencyStore,
	wire.Bind(new(appcheckout.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appcheckout.IdempotencyStore), new(*redis.IdempotencyStore)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	product.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewGetUserUseCase,
	appuser.NewListUsersUseCase,
	appuser.NewUpdateUserUseCase,
	appproduct.NewCreateProductUseCase,
	appproduct.NewGetProductUseCase,
	appproduct.NewListProductsUseCase,
	appproduct.NewUpdateProductUseCase,
	appproduct.NewDeleteProductUseCase,
	appcart.NewAddItemUseCase,
	appcart.NewListCartUseCase,
	appcart.NewUpdateItemUseCase,
	appcart.NewRemoveItemUseCase,
	appcheckout.NewCheckoutUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewGetOrderUseCase,
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewProductHandler,
	handler.NewCartHandler,
	handler.NewCheckoutHandler,
	handler.NewOrderHandler,
	middleware.NewAuthMiddleware,
)

// Handlers 聚合全部HTTP处理器,供路由注册使用
type Handlers struct {
	User     *handler.UserHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
	Auth     *middleware.AuthMiddleware
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.RefreshTokenExpire)
}

// provideBreaker 缓存访问熔断器
func provideBreaker(cfg *config.Config) *circuitbreaker.Breaker {
	return circuitbreaker.New(circuitbreaker.DefaultOptions())
}

// provideEventPublisher MQ未启用时注入nil,结算用例会跳过事件发布
func provideEventPublisher(cfg *config.Config) appcheckout.EventPublisher {
	return nil
}

// InitializeHandlers Wire注入器:组装全部处理器
func InitializeHandlers() (*Handlers, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		provideEventPublisher,
		wire.Struct(new(Handlers), "*"),
	)
	return nil, nil
}
