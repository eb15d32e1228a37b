package order

import (
	"context"
	"fmt"

	"github.com/xiebiao/estore/internal/domain/order"
)

// ListOrdersUseCase 订单列表查询用例
// 列表只返回订单头(不含明细),详情接口再查明细
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// OrderSummary 订单头DTO
type OrderSummary struct {
	ID        uint   `json:"id"`
	OrderNo   string `json:"order_no"`
	UserID    uint   `json:"user_id"`
	Total     int64  `json:"total"` // 总金额(分)
	TotalYuan string `json:"total_yuan"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ListOrdersResponse 订单列表响应DTO
type ListOrdersResponse struct {
	List  []OrderSummary `json:"list"`
	Total int            `json:"total"`
}

// Execute 执行订单列表查询
func (uc *ListOrdersUseCase) Execute(ctx context.Context) (*ListOrdersResponse, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]OrderSummary, len(orders))
	for i, o := range orders {
		list[i] = toOrderSummary(o)
	}

	return &ListOrdersResponse{
		List:  list,
		Total: len(list),
	}, nil
}

// toOrderSummary 实体 → 订单头DTO
func toOrderSummary(o *order.Order) OrderSummary {
	return OrderSummary{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		Total:     o.Total,
		TotalYuan: formatPrice(o.Total),
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatPrice 格式化价格(分→元)
func formatPrice(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}
