package product

import (
	"context"
	"errors"
	"log"

	"github.com/xiebiao/estore/internal/domain/product"
	"github.com/xiebiao/estore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/estore/pkg/circuitbreaker"
)

// GetProductUseCase 商品详情查询用例
// 设计说明:
// 1. Cache-Aside:先查Redis,未命中查MySQL并回填
// 2. 熔断器包住Redis访问:Redis故障时快速失败直连数据库,
//    避免每个请求都等Redis超时
// 3. cache为nil时退化为纯数据库查询(测试和无Redis环境)
type GetProductUseCase struct {
	productService product.Service
	cache          *redis.ProductCache
	breaker        *circuitbreaker.Breaker
}

// NewGetProductUseCase 创建商品详情用例
func NewGetProductUseCase(
	productService product.Service,
	cache *redis.ProductCache,
	breaker *circuitbreaker.Breaker,
) *GetProductUseCase {
	return &GetProductUseCase{
		productService: productService,
		cache:          cache,
		breaker:        breaker,
	}
}

// Execute 执行商品详情查询
func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*ProductResponse, error) {
	// 1. 尝试读缓存(经过熔断器)
	if p := uc.fromCache(ctx, id); p != nil {
		return toProductResponse(p), nil
	}

	// 2. 回源数据库
	p, err := uc.productService.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存(尽力而为)
	uc.fillCache(ctx, p)

	return toProductResponse(p), nil
}

// fromCache 读缓存,任何失败(未命中/熔断/Redis故障)都返回nil回源
func (uc *GetProductUseCase) fromCache(ctx context.Context, id uint) *product.Product {
	if uc.cache == nil {
		return nil
	}

	var cached *product.Product
	err := uc.breaker.Execute(func() error {
		p, err := uc.cache.Get(ctx, id)
		if err != nil {
			if errors.Is(err, redis.ErrCacheMiss) {
				// 未命中不算故障,不触发熔断计数
				return nil
			}
			return err
		}
		cached = p
		return nil
	})
	if err != nil {
		if !errors.Is(err, circuitbreaker.ErrOpenState) {
			log.Printf("[product] 读取缓存失败,回源数据库: %v", err)
		}
		return nil
	}
	return cached
}

// fillCache 回填缓存
func (uc *GetProductUseCase) fillCache(ctx context.Context, p *product.Product) {
	if uc.cache == nil {
		return
	}

	err := uc.breaker.Execute(func() error {
		return uc.cache.Set(ctx, p)
	})
	if err != nil && !errors.Is(err, circuitbreaker.ErrOpenState) {
		log.Printf("[product] 回填缓存失败: %v", err)
	}
}
