package handler

import (
	"github.com/gin-gonic/gin"

	appcheckout "github.com/xiebiao/estore/internal/application/checkout"
	"github.com/xiebiao/estore/internal/interface/http/dto"
	"github.com/xiebiao/estore/pkg/response"
)

// CheckoutHandler 结算HTTP处理器
type CheckoutHandler struct {
	checkoutUseCase *appcheckout.CheckoutUseCase
}

// NewCheckoutHandler 创建结算处理器
func NewCheckoutHandler(checkoutUseCase *appcheckout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUseCase: checkoutUseCase}
}

// Checkout 结算购物车
// @Summary      结算购物车
// @Description  把购物车原子地转化为订单:锁定购物车行和商品行,按当前价格定价,创建订单并清空购物车,全部在一个事务内完成
// @Tags         结算模块
// @Produce      json
// @Param        userId path int true "用户ID"
// @Param        Idempotency-Key header string false "幂等键,携带时同一键的重复请求返回同一订单"
// @Success      200 {object} response.Response{data=dto.CheckoutResponse} "结算成功"
// @Failure      400 {object} response.Response "购物车为空/商品已下架"
// @Failure      500 {object} response.Response "存储失败"
// @Router       /api/v1/cart/{userId}/checkout [post]
//
// 说明:防止并发双重结算
// 两个请求同时结算同一购物车时,第一个事务用SELECT FOR UPDATE锁住购物车行,
// 第二个事务阻塞等待;第一个提交后第二个只能看到空购物车,返回"购物车为空"。
// 测试方法:
// 1. 往购物车加入商品
// 2. 并发发起两个结算请求
// 3. 预期结果:一个成功产生订单,另一个返回40001,订单只有一个
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var param dto.CartUserParam
	if err := c.ShouldBindUri(&param); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), appcheckout.CheckoutRequest{
		UserID:         param.UserID,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.CheckoutResponse{
		OrderID:   result.OrderID,
		OrderNo:   result.OrderNo,
		Total:     result.Total,
		TotalYuan: result.TotalYuan,
		LineCount: result.LineCount,
		Status:    result.Status,
		Message:   result.Message,
		CreatedAt: result.CreatedAt,
	})
}
