package product

import (
	"context"
	"fmt"

	"github.com/xiebiao/estore/internal/domain/product"
)

// CreateProductUseCase 创建商品用例
type CreateProductUseCase struct {
	productService product.Service
}

// NewCreateProductUseCase 创建商品用例
func NewCreateProductUseCase(productService product.Service) *CreateProductUseCase {
	return &CreateProductUseCase{productService: productService}
}

// CreateProductRequest 创建商品请求DTO
type CreateProductRequest struct {
	Name        string
	Description string
	Price       int64 // 价格(分)
	Stock       int
	CategoryID  uint
}

// ProductResponse 商品响应DTO(创建/查询/更新共用)
type ProductResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // 价格(分)
	PriceYuan   string `json:"price_yuan"`
	Stock       int    `json:"stock"`
	CategoryID  uint   `json:"category_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Execute 执行创建商品
func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	p, err := uc.productService.CreateProduct(ctx, req.Name, req.Description, req.Price, req.Stock, req.CategoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// toProductResponse 实体 → 响应DTO
func toProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PriceYuan:   formatPrice(p.Price),
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatPrice 格式化价格(分→元)
func formatPrice(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}
