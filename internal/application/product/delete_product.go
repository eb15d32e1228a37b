package product

import (
	"context"
	"errors"
	"log"

	"github.com/xiebiao/estore/internal/domain/product"
	"github.com/xiebiao/estore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/estore/pkg/circuitbreaker"
)

// DeleteProductUseCase 删除商品用例
// 设计说明:
// 1. 软删除:商品从目录消失,但历史订单的JOIN查询仍能取到商品名称
// 2. 不级联清理购物车:引用了已删商品的购物车在结算时整单失败,
//    由用户移除条目后重试(数据一致性错误显式暴露,不静默吞掉)
type DeleteProductUseCase struct {
	productService product.Service
	cache          *redis.ProductCache
	breaker        *circuitbreaker.Breaker
}

// NewDeleteProductUseCase 创建删除商品用例
func NewDeleteProductUseCase(
	productService product.Service,
	cache *redis.ProductCache,
	breaker *circuitbreaker.Breaker,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productService: productService,
		cache:          cache,
		breaker:        breaker,
	}
}

// Execute 执行删除商品
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.productService.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		err := uc.breaker.Execute(func() error {
			return uc.cache.Delete(ctx, id)
		})
		if err != nil && !errors.Is(err, circuitbreaker.ErrOpenState) {
			log.Printf("[product] 删除商品缓存失败(商品%d): %v", id, err)
		}
	}

	return nil
}
