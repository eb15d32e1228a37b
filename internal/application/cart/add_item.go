package cart

import (
	"context"

	"github.com/xiebiao/estore/internal/domain/cart"
	"github.com/xiebiao/estore/internal/domain/product"
	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// AddItemUseCase 加购用例
// 设计说明:
// 1. 同一用户重复加购同一商品时合并数量,不产生新条目
// 2. 加购前校验商品存在,购物车里不允许出现悬空的商品引用
// 3. (user_id, product_id)唯一索引兜底并发加购窗口
type AddItemUseCase struct {
	cartRepo       cart.Repository
	productService product.Service
}

// NewAddItemUseCase 创建加购用例
func NewAddItemUseCase(cartRepo cart.Repository, productService product.Service) *AddItemUseCase {
	return &AddItemUseCase{
		cartRepo:       cartRepo,
		productService: productService,
	}
}

// AddItemRequest 加购请求DTO
type AddItemRequest struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// AddItemResponse 加购响应DTO
type AddItemResponse struct {
	LineID   uint `json:"line_id"`
	Quantity int  `json:"quantity"` // 合并后的数量
	Merged   bool `json:"merged"`   // 是否发生了数量合并
}

// Execute 执行加购
func (uc *AddItemUseCase) Execute(ctx context.Context, req AddItemRequest) (*AddItemResponse, error) {
	if req.Quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}

	// 商品必须存在
	if _, err := uc.productService.GetProductByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	// 已有条目则合并数量
	existing, err := uc.cartRepo.FindByUserAndProduct(ctx, req.UserID, req.ProductID)
	if err == nil {
		if err := existing.Merge(req.Quantity); err != nil {
			return nil, err
		}
		if err := uc.cartRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &AddItemResponse{
			LineID:   existing.ID,
			Quantity: existing.Quantity,
			Merged:   true,
		}, nil
	}
	if apperrors.GetAppError(err).Code != apperrors.ErrCodeCartLineMissing {
		return nil, err
	}

	// 新增条目
	line, err := cart.NewLine(req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := uc.cartRepo.Create(ctx, line); err != nil {
		return nil, err
	}

	return &AddItemResponse{
		LineID:   line.ID,
		Quantity: line.Quantity,
		Merged:   false,
	}, nil
}
