package cart

import (
	"time"
)

// Line 购物车条目
// 设计说明:
// 1. 购物车以userID为键:一个用户一个活跃购物车,不单设cart表,
//    也不引入独立的"购物车ID"概念
// 2. (UserID, ProductID)唯一:重复加购合并数量,不产生新行
// 3. 结算成功后条目被删除,购物车与订单不共享任何可变状态
type Line struct {
	ID        uint
	UserID    uint // 购物车归属用户
	ProductID uint // 商品ID
	Quantity  int  // 数量,必须>0
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLine 创建购物车条目(工厂方法)
func NewLine(userID, productID uint, quantity int) (*Line, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	now := time.Now()
	return &Line{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Merge 合并重复加购的数量
func (l *Line) Merge(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	l.Quantity += quantity
	l.UpdatedAt = time.Now()
	return nil
}

// SetQuantity 直接设置数量(购物车页面修改)
func (l *Line) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	l.Quantity = quantity
	l.UpdatedAt = time.Now()
	return nil
}

// LineView 购物车条目视图:条目+商品展示字段
// 列表接口返回,价格仅用于展示,结算时会重新定价
type LineView struct {
	Line
	ProductName  string
	ProductPrice int64 // 当前价格(分)
}
