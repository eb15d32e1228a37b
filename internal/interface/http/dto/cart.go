package dto

// AddCartItemRequest HTTP加购请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required,min=1" example:"1"`
	Quantity  int  `json:"quantity" binding:"required,min=1,max=999" example:"2"`
}

// UpdateCartItemRequest HTTP修改购物车数量请求(覆盖式,不是增量)
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=999" example:"3"`
}

// CartUserParam 购物车路径参数(购物车以用户ID为键)
type CartUserParam struct {
	UserID uint `uri:"userId" binding:"required,min=1"`
}

// CartLineParam 购物车条目路径参数
type CartLineParam struct {
	UserID uint `uri:"userId" binding:"required,min=1"`
	LineID uint `uri:"lineId" binding:"required,min=1"`
}

// CheckoutResponse HTTP结算响应
type CheckoutResponse struct {
	OrderID   uint   `json:"order_id" example:"1"`
	OrderNo   string `json:"order_no" example:"ORD1705286400123456"`
	Total     int64  `json:"total" example:"61800"` // 总金额(分)
	TotalYuan string `json:"total_yuan" example:"618.00"`
	LineCount int    `json:"line_count" example:"2"`
	Status    string `json:"status" example:"Paid"`
	Message   string `json:"message" example:"结算成功"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
}
