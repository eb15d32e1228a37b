package dto

// CreateProductRequest HTTP创建商品请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=200" example:"机械键盘"`
	Description string `json:"description" binding:"max=5000" example:"87键,茶轴"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999" example:"29900"` // 价格(分),299.00元
	Stock       int    `json:"stock" binding:"min=0" example:"100"`
	CategoryID  uint   `json:"category_id" binding:"omitempty" example:"1"`
}

// UpdateProductRequest HTTP更新商品请求
// 全量更新:未传的字段会被置为零值,客户端应先GET再PUT
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required,max=200" example:"机械键盘"`
	Description string `json:"description" binding:"max=5000" example:"87键,茶轴"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999" example:"27900"`
	Stock       int    `json:"stock" binding:"min=0" example:"80"`
	CategoryID  uint   `json:"category_id" binding:"omitempty" example:"1"`
}

// ProductResponse HTTP商品响应
type ProductResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"机械键盘"`
	Description string `json:"description" example:"87键,茶轴"`
	Price       int64  `json:"price" example:"29900"`      // 价格(分)
	PriceYuan   string `json:"price_yuan" example:"299.00"` // 价格(元),方便前端显示
	Stock       int    `json:"stock" example:"100"`
	CategoryID  uint   `json:"category_id" example:"1"`
	CreatedAt   string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt   string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ListProductsRequest HTTP商品列表请求
type ListProductsRequest struct {
	CategoryID uint `form:"category_id" binding:"omitempty" example:"1"`
}

// IDParam 路径ID参数
type IDParam struct {
	ID uint `uri:"id" binding:"required,min=1"`
}
