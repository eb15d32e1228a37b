package cart

import (
	"context"

	"github.com/xiebiao/estore/internal/domain/cart"
	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// RemoveItemUseCase 移除购物车条目用例
type RemoveItemUseCase struct {
	cartRepo cart.Repository
}

// NewRemoveItemUseCase 创建移除条目用例
func NewRemoveItemUseCase(cartRepo cart.Repository) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartRepo: cartRepo}
}

// RemoveItemRequest 移除条目请求DTO
type RemoveItemRequest struct {
	UserID uint
	LineID uint
}

// Execute 执行移除
func (uc *RemoveItemUseCase) Execute(ctx context.Context, req RemoveItemRequest) error {
	line, err := uc.cartRepo.FindByID(ctx, req.LineID)
	if err != nil {
		return err
	}
	if line.UserID != req.UserID {
		return apperrors.ErrForbidden
	}

	return uc.cartRepo.Delete(ctx, line.ID)
}
