package order

import (
	"context"

	"github.com/xiebiao/estore/internal/domain/order"
)

// GetOrderUseCase 订单详情查询用例
// 明细关联商品的展示字段;商品被软删除后历史订单仍然完整,
// 价格取的是下单时的快照而非商品当前价格
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// OrderItemDetail 订单明细DTO
type OrderItemDetail struct {
	ProductID    uint   `json:"product_id"`
	ProductName  string `json:"product_name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"` // 下单时单价(分)
	PriceYuan    string `json:"price_yuan"`
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"` // 小计(分)
	SubtotalYuan string `json:"subtotal_yuan"`
}

// OrderDetailResponse 订单详情响应DTO
type OrderDetailResponse struct {
	OrderSummary
	Items []OrderItemDetail `json:"items"`
}

// Execute 执行订单详情查询
func (uc *GetOrderUseCase) Execute(ctx context.Context, id uint) (*OrderDetailResponse, error) {
	o, views, err := uc.orderRepo.FindWithItemViews(ctx, id)
	if err != nil {
		return nil, err
	}

	items := make([]OrderItemDetail, len(views))
	for i, v := range views {
		subtotal := v.Subtotal()
		items[i] = OrderItemDetail{
			ProductID:    v.ProductID,
			ProductName:  v.ProductName,
			Description:  v.ProductDescription,
			Price:        v.Price,
			PriceYuan:    formatPrice(v.Price),
			Quantity:     v.Quantity,
			Subtotal:     subtotal,
			SubtotalYuan: formatPrice(subtotal),
		}
	}

	return &OrderDetailResponse{
		OrderSummary: toOrderSummary(o),
		Items:        items,
	}, nil
}
