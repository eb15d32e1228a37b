package cart

import (
	"context"
)

// Repository 购物车仓储接口
// 事务通过context传递(见mysql.TxManager)
type Repository interface {
	// Create 新增条目
	Create(ctx context.Context, line *Line) error

	// FindByID 根据条目ID查找
	FindByID(ctx context.Context, id uint) (*Line, error)

	// FindByUserAndProduct 查找用户购物车中的指定商品条目
	// 不存在时返回ErrLineNotFound(加购时用于判断合并还是新增)
	FindByUserAndProduct(ctx context.Context, userID, productID uint) (*Line, error)

	// ListByUserID 查询用户的全部条目(关联商品名称/价格,按加购时间排序)
	ListByUserID(ctx context.Context, userID uint) ([]*LineView, error)

	// LockByUserID 悲观锁读取用户的全部条目(SELECT FOR UPDATE)
	// 结算引擎的第一步:锁住购物车行,并发结算的第二个事务会在此阻塞,
	// 待第一个事务提交后只能看到空购物车
	LockByUserID(ctx context.Context, userID uint) ([]*Line, error)

	// Update 更新条目(数量修改)
	Update(ctx context.Context, line *Line) error

	// Delete 删除条目
	Delete(ctx context.Context, id uint) error

	// DeleteByIDs 按条目ID集合删除
	// 结算引擎用它精确删除快照时捕获的条目,不误删结算过程中
	// 并发加入的新条目
	DeleteByIDs(ctx context.Context, ids []uint) error
}
