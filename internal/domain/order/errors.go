package order

import (
	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrNoItems 订单明细不能为空
	ErrNoItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")

	// ErrTotalMismatch 总额与明细不一致(结算引擎内部校验,出现即为bug)
	ErrTotalMismatch = apperrors.New(apperrors.ErrCodeInternal, "订单总额与明细不一致")
)
