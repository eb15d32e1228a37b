package order

import (
	"time"
)

// Status 订单状态
// 当前业务只在结算成功时产生Paid订单;类型保留扩展空间
// (退款/发货等状态属于后续迭代)
type Status int

const (
	// StatusPaid 已支付(结算即支付,本系统不含支付网关)
	StatusPaid Status = 1
)

// String 实现Stringer接口(方便日志输出)
func (s Status) String() string {
	switch s {
	case StatusPaid:
		return "Paid"
	default:
		return "Unknown"
	}
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,Item是子实体,必须一起创建
// 2. Total是结算时刻计算的不可变快照,与后续商品调价无关
// 3. 订单创建后在本系统范围内不再被修改
type Order struct {
	ID        uint
	OrderNo   string // 订单号(业务主键,全局唯一)
	UserID    uint   // 买家用户ID
	Total     int64  // 订单总金额(分),= Σ Item.Price*Quantity
	Status    Status // 订单状态
	Items     []Item // 订单明细
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item 订单明细项
// Price字段记录"下单时的单价"(历史价格快照),商品后续调价不影响历史订单
type Item struct {
	ID        uint
	OrderID   uint  // 所属订单ID
	ProductID uint  // 商品ID
	Quantity  int   // 购买数量
	Price     int64 // 下单时的单价(分)
}

// Subtotal 明细小计(分)
func (i Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// NewOrder 创建新订单(工厂方法)
// total由结算引擎根据锁定价格算出,这里用明细回算校验,
// 防止调用方传入与明细不一致的总额
func NewOrder(orderNo string, userID uint, items []Item, total int64) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	var sum int64
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		sum += item.Subtotal()
	}
	if sum != total {
		return nil, ErrTotalMismatch
	}

	now := time.Now()
	return &Order{
		OrderNo:   orderNo,
		UserID:    userID,
		Total:     total,
		Status:    StatusPaid,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CalculateTotal 按明细重新计算总金额
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
