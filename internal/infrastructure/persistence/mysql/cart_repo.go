package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/estore/internal/domain/cart"
	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
// 结算引擎的主要外部依赖:"读取全部条目+按ID删除"这对操作
// 通过行锁+事务取得逻辑上的原子性
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// Create 新增条目
func (r *cartRepository) Create(ctx context.Context, line *cart.Line) error {
	model := &CartItemModel{
		UserID:    line.UserID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			// (UserID, ProductID)唯一索引冲突:并发加购撞上了,
			// 调用方应改走合并路径
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "商品已在购物车中")
		}
		return apperrors.Wrap(err, "加入购物车失败")
	}

	line.ID = model.ID
	line.CreatedAt = model.CreatedAt
	line.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据条目ID查找
func (r *cartRepository) FindByID(ctx context.Context, id uint) (*cart.Line, error) {
	var model CartItemModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrLineNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return toCartLineEntity(&model), nil
}

// FindByUserAndProduct 查找用户购物车中的指定商品条目
func (r *cartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*cart.Line, error) {
	var model CartItemModel
	err := dbFromContext(ctx, r.db).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrLineNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return toCartLineEntity(&model), nil
}

// ListByUserID 查询用户的全部条目(关联商品名称/价格)
// JOIN查询:
//
//	SELECT ci.*, p.name, p.price FROM cart_items ci
//	JOIN products p ON ci.product_id = p.id WHERE ci.user_id = ?
func (r *cartRepository) ListByUserID(ctx context.Context, userID uint) ([]*cart.LineView, error) {
	var rows []struct {
		CartItemModel
		ProductName  string
		ProductPrice int64
	}

	err := dbFromContext(ctx, r.db).
		Table("cart_items").
		Select("cart_items.*, products.name AS product_name, products.price AS product_price").
		Joins("JOIN products ON products.id = cart_items.product_id AND products.deleted_at IS NULL").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	views := make([]*cart.LineView, len(rows))
	for i, row := range rows {
		views[i] = &cart.LineView{
			Line:         *toCartLineEntity(&row.CartItemModel),
			ProductName:  row.ProductName,
			ProductPrice: row.ProductPrice,
		}
	}
	return views, nil
}

// LockByUserID 悲观锁读取用户的全部条目
// SELECT * FROM cart_items WHERE user_id = ? FOR UPDATE
// 这是防止同一购物车被并发结算两次的关键:第二个事务在此阻塞,
// 等第一个事务提交后看到的是空购物车
func (r *cartRepository) LockByUserID(ctx context.Context, userID uint) ([]*cart.Line, error) {
	var models []CartItemModel
	db := dbFromContext(ctx, r.db)

	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "锁定购物车失败")
	}

	lines := make([]*cart.Line, len(models))
	for i, model := range models {
		lines[i] = toCartLineEntity(&model)
	}
	return lines, nil
}

// Update 更新条目数量
func (r *cartRepository) Update(ctx context.Context, line *cart.Line) error {
	result := dbFromContext(ctx, r.db).Model(&CartItemModel{}).
		Where("id = ?", line.ID).
		Updates(map[string]interface{}{
			"quantity":   line.Quantity,
			"updated_at": line.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrLineNotFound
	}
	return nil
}

// Delete 删除条目
func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	result := dbFromContext(ctx, r.db).Delete(&CartItemModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrLineNotFound
	}
	return nil
}

// DeleteByIDs 按条目ID集合删除
// 结算引擎只删除快照时捕获的ID,结算期间并发加入的新条目不受影响
func (r *cartRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	err := dbFromContext(ctx, r.db).
		Where("id IN ?", ids).
		Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

// toCartLineEntity GORM模型 → 领域实体
func toCartLineEntity(model *CartItemModel) *cart.Line {
	return &cart.Line{
		ID:        model.ID,
		UserID:    model.UserID,
		ProductID: model.ProductID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
