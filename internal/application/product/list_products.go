package product

import (
	"context"

	"github.com/xiebiao/estore/internal/domain/product"
)

// ListProductsUseCase 商品列表查询用例
type ListProductsUseCase struct {
	productService product.Service
}

// NewListProductsUseCase 创建商品列表用例
func NewListProductsUseCase(productService product.Service) *ListProductsUseCase {
	return &ListProductsUseCase{productService: productService}
}

// ListProductsRequest 列表查询请求DTO
type ListProductsRequest struct {
	CategoryID uint // 按分类过滤,0表示全部
}

// ListProductsResponse 列表查询响应DTO
type ListProductsResponse struct {
	List  []ProductResponse `json:"list"`
	Total int               `json:"total"`
}

// Execute 执行列表查询
func (uc *ListProductsUseCase) Execute(ctx context.Context, req ListProductsRequest) (*ListProductsResponse, error) {
	products, err := uc.productService.ListProducts(ctx, product.ListParams{
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	list := make([]ProductResponse, len(products))
	for i, p := range products {
		list[i] = *toProductResponse(p)
	}

	return &ListProductsResponse{
		List:  list,
		Total: len(list),
	}, nil
}
