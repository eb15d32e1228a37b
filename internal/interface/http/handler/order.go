package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/estore/internal/application/order"
	"github.com/xiebiao/estore/internal/interface/http/dto"
	"github.com/xiebiao/estore/pkg/response"
)

// OrderHandler 订单HTTP处理器
// 订单只读:创建只能走结算接口,不提供订单修改/删除
type OrderHandler struct {
	listUseCase *apporder.ListOrdersUseCase
	getUseCase  *apporder.GetOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	listUseCase *apporder.ListOrdersUseCase,
	getUseCase *apporder.GetOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		listUseCase: listUseCase,
		getUseCase:  getUseCase,
	}
}

// ListOrders 订单列表
// @Summary      订单列表
// @Description  返回订单头,按创建时间倒序,不含明细
// @Tags         订单模块
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOrder 订单详情
// @Summary      订单详情
// @Description  返回订单头和明细,明细价格是下单时的快照
// @Tags         订单模块
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), param.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
