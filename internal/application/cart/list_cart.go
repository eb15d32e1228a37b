package cart

import (
	"context"
	"fmt"

	"github.com/xiebiao/estore/internal/domain/cart"
)

// ListCartUseCase 购物车列表查询用例
// 列表关联商品的名称和当前价格,价格仅用于展示,
// 结算时会在事务内重新定价
type ListCartUseCase struct {
	cartRepo cart.Repository
}

// NewListCartUseCase 创建购物车查询用例
func NewListCartUseCase(cartRepo cart.Repository) *ListCartUseCase {
	return &ListCartUseCase{cartRepo: cartRepo}
}

// CartLineItem 购物车条目DTO
type CartLineItem struct {
	LineID       uint   `json:"line_id"`
	ProductID    uint   `json:"product_id"`
	ProductName  string `json:"product_name"`
	Price        int64  `json:"price"` // 当前单价(分)
	PriceYuan    string `json:"price_yuan"`
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"` // 小计(分)
	SubtotalYuan string `json:"subtotal_yuan"`
}

// ListCartResponse 购物车列表响应DTO
type ListCartResponse struct {
	UserID    uint           `json:"user_id"`
	List      []CartLineItem `json:"list"`
	ItemCount int            `json:"item_count"` // 条目数
	Total     int64          `json:"total"`      // 展示总额(分)
	TotalYuan string         `json:"total_yuan"`
}

// Execute 执行购物车查询
func (uc *ListCartUseCase) Execute(ctx context.Context, userID uint) (*ListCartResponse, error) {
	views, err := uc.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	list := make([]CartLineItem, len(views))
	for i, v := range views {
		subtotal := v.ProductPrice * int64(v.Quantity)
		list[i] = CartLineItem{
			LineID:       v.ID,
			ProductID:    v.ProductID,
			ProductName:  v.ProductName,
			Price:        v.ProductPrice,
			PriceYuan:    formatPrice(v.ProductPrice),
			Quantity:     v.Quantity,
			Subtotal:     subtotal,
			SubtotalYuan: formatPrice(subtotal),
		}
		total += subtotal
	}

	return &ListCartResponse{
		UserID:    userID,
		List:      list,
		ItemCount: len(list),
		Total:     total,
		TotalYuan: formatPrice(total),
	}, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}
