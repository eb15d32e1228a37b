package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/estore/internal/domain/order"
	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 设计要点:
// 1. Order和OrderItem是聚合关系,必须一起保存
// 2. 查询时使用Preload预加载明细,避免N+1问题
// 3. 事务通过context传递
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单
// GORM通过foreignKey关联自动保存Items;必须在事务中调用
// (结算引擎保证订单+明细+购物车清空同生共死)
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填自增ID
	o.ID = model.ID
	for i := range o.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}

	return nil
}

// FindByID 根据ID查找订单(Preload明细,避免N+1查询)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	db := dbFromContext(ctx, r.db)

	err := db.Preload("Items").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// FindByOrderNo 根据订单号查找订单
func (r *orderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	var model OrderModel
	db := dbFromContext(ctx, r.db)

	err := db.Preload("Items").Where("order_no = ?", orderNo).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// List 查询全部订单头,按创建时间倒序
// 列表不带明细(减少数据量),详情页再查明细
func (r *orderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var models []OrderModel

	err := dbFromContext(ctx, r.db).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i, model := range models {
		orders[i] = toOrderEntity(&model)
	}
	return orders, nil
}

// FindWithItemViews 查询订单及关联商品展示字段的明细
// JOIN查询:
//
//	SELECT oi.*, p.name, p.description FROM order_items oi
//	JOIN products p ON oi.product_id = p.id WHERE oi.order_id = ?
func (r *orderRepository) FindWithItemViews(ctx context.Context, id uint) (*order.Order, []*order.ItemView, error) {
	o, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var rows []struct {
		OrderItemModel
		ProductName        string
		ProductDescription string
	}

	err = dbFromContext(ctx, r.db).
		Table("order_items").
		Select("order_items.*, products.name AS product_name, products.description AS product_description").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", id).
		Order("order_items.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "查询订单明细失败")
	}

	views := make([]*order.ItemView, len(rows))
	for i, row := range rows {
		views[i] = &order.ItemView{
			Item: order.Item{
				ID:        row.ID,
				OrderID:   row.OrderID,
				ProductID: row.ProductID,
				Quantity:  row.Quantity,
				Price:     row.Price,
			},
			ProductName:        row.ProductName,
			ProductDescription: row.ProductDescription,
		}
	}
	return o, views, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return &OrderModel{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    int(o.Status),
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	items := make([]order.Item, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.Item{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return &order.Order{
		ID:        model.ID,
		OrderNo:   model.OrderNo,
		UserID:    model.UserID,
		Total:     model.Total,
		Status:    order.Status(model.Status),
		Items:     items,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
