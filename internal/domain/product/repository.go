package product

import (
	"context"
)

// ListParams 商品列表查询参数
type ListParams struct {
	CategoryID uint // 按分类过滤,0表示不过滤
}

// Repository 商品仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现
type Repository interface {
	// Create 创建商品
	Create(ctx context.Context, p *Product) error

	// FindByID 根据ID查找商品
	FindByID(ctx context.Context, id uint) (*Product, error)

	// LockByID 悲观锁查询商品(SELECT FOR UPDATE)
	// 结算引擎定价时使用:锁住商品行保证价格快照在事务内不变
	LockByID(ctx context.Context, id uint) (*Product, error)

	// List 查询商品列表,支持按分类过滤
	List(ctx context.Context, params ListParams) ([]*Product, error)

	// Update 更新商品
	Update(ctx context.Context, p *Product) error

	// Delete 删除商品
	Delete(ctx context.Context, id uint) error
}
