package cart

import (
	"context"

	"github.com/xiebiao/estore/internal/domain/cart"
	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// UpdateItemUseCase 修改购物车条目数量用例
type UpdateItemUseCase struct {
	cartRepo cart.Repository
}

// NewUpdateItemUseCase 创建修改数量用例
func NewUpdateItemUseCase(cartRepo cart.Repository) *UpdateItemUseCase {
	return &UpdateItemUseCase{cartRepo: cartRepo}
}

// UpdateItemRequest 修改数量请求DTO
type UpdateItemRequest struct {
	UserID   uint
	LineID   uint
	Quantity int // 新数量(覆盖,不是增量)
}

// Execute 执行数量修改
// 条目必须属于请求的用户,防止越权修改他人购物车
func (uc *UpdateItemUseCase) Execute(ctx context.Context, req UpdateItemRequest) error {
	line, err := uc.cartRepo.FindByID(ctx, req.LineID)
	if err != nil {
		return err
	}
	if line.UserID != req.UserID {
		return apperrors.ErrForbidden
	}

	if err := line.SetQuantity(req.Quantity); err != nil {
		return err
	}

	return uc.cartRepo.Update(ctx, line)
}
