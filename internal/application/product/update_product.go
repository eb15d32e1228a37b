package product

import (
	"context"
	"errors"
	"log"

	"github.com/xiebiao/estore/internal/domain/product"
	"github.com/xiebiao/estore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/estore/pkg/circuitbreaker"
)

// UpdateProductUseCase 更新商品用例
// 写路径先更新数据库再删除缓存,下次读取时回填最新数据
type UpdateProductUseCase struct {
	productService product.Service
	cache          *redis.ProductCache
	breaker        *circuitbreaker.Breaker
}

// NewUpdateProductUseCase 创建更新商品用例
func NewUpdateProductUseCase(
	productService product.Service,
	cache *redis.ProductCache,
	breaker *circuitbreaker.Breaker,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productService: productService,
		cache:          cache,
		breaker:        breaker,
	}
}

// UpdateProductRequest 更新商品请求DTO
type UpdateProductRequest struct {
	ID          uint
	Name        string
	Description string
	Price       int64 // 价格(分)
	Stock       int
	CategoryID  uint
}

// Execute 执行更新商品
func (uc *UpdateProductUseCase) Execute(ctx context.Context, req UpdateProductRequest) (*ProductResponse, error) {
	p, err := uc.productService.UpdateProduct(ctx, req.ID, req.Name, req.Description, req.Price, req.Stock, req.CategoryID)
	if err != nil {
		return nil, err
	}

	uc.evictCache(ctx, req.ID)

	return toProductResponse(p), nil
}

// evictCache 删除商品缓存(失败只记日志,缓存过期时间兜底)
func (uc *UpdateProductUseCase) evictCache(ctx context.Context, id uint) {
	if uc.cache == nil {
		return
	}

	err := uc.breaker.Execute(func() error {
		return uc.cache.Delete(ctx, id)
	})
	if err != nil && !errors.Is(err, circuitbreaker.ErrOpenState) {
		log.Printf("[product] 删除商品缓存失败(商品%d): %v", id, err)
	}
}
