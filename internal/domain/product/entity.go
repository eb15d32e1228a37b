package product

import (
	"time"
)

// Product 商品实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. 结算引擎只读本实体,价格快照在下单时冻结到订单明细
// 3. Stock是目录属性,结算流程不扣减(库存预占不在本系统范围内)
type Product struct {
	ID          uint
	Name        string // 商品名称
	Description string // 商品描述
	Price       int64  // 价格(单位:分,1元=100分)
	Stock       int    // 库存数量
	CategoryID  uint   // 分类ID(0表示未分类)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct 创建新商品(工厂方法)
func NewProduct(name, description string, price int64, stock int, categoryID uint) *Product {
	now := time.Now()
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格必须>0
func (p *Product) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	p.Price = newPrice
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateStock 更新库存(领域行为)
// 业务规则:库存不能为负数
func (p *Product) UpdateStock(newStock int) error {
	if newStock < 0 {
		return ErrInvalidStock
	}
	p.Stock = newStock
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新商品基本信息
func (p *Product) UpdateInfo(name, description string, categoryID uint) {
	if name != "" {
		p.Name = name
	}
	if description != "" {
		p.Description = description
	}
	if categoryID != 0 {
		p.CategoryID = categoryID
	}
	p.UpdatedAt = time.Now()
}
