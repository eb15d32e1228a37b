package order

import (
	"context"
)

// ItemView 订单明细视图:明细+商品展示字段
type ItemView struct {
	Item
	ProductName        string
	ProductDescription string
}

// Repository 订单仓储接口
// 订单和明细必须在同一事务中创建(通过context传递事务)
type Repository interface {
	// Create 创建订单(包含订单明细)
	Create(ctx context.Context, o *Order) error

	// FindByID 根据ID查找订单(包含订单明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// List 查询全部订单头,按创建时间倒序
	List(ctx context.Context) ([]*Order, error)

	// FindWithItemViews 查询订单及关联商品展示字段的明细
	FindWithItemViews(ctx context.Context, id uint) (*Order, []*ItemView, error)
}
