package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/estore/internal/application/cart"
	"github.com/xiebiao/estore/internal/interface/http/dto"
	"github.com/xiebiao/estore/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 购物车以用户ID为键,路径形如 /cart/{userId}/items
type CartHandler struct {
	addUseCase    *appcart.AddItemUseCase
	listUseCase   *appcart.ListCartUseCase
	updateUseCase *appcart.UpdateItemUseCase
	removeUseCase *appcart.RemoveItemUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addUseCase *appcart.AddItemUseCase,
	listUseCase *appcart.ListCartUseCase,
	updateUseCase *appcart.UpdateItemUseCase,
	removeUseCase *appcart.RemoveItemUseCase,
) *CartHandler {
	return &CartHandler{
		addUseCase:    addUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		removeUseCase: removeUseCase,
	}
}

// AddItem 加购
// @Summary      添加商品到购物车
// @Description  重复加购同一商品时合并数量
// @Tags         购物车模块
// @Accept       json
// @Produce      json
// @Param        userId path int true "用户ID"
// @Param        request body dto.AddCartItemRequest true "加购信息"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/cart/{userId}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var param dto.CartUserParam
	if err := c.ShouldBindUri(&param); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.addUseCase.Execute(c.Request.Context(), appcart.AddItemRequest{
		UserID:    param.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListCart 购物车列表
// @Summary      查询购物车
// @Description  返回条目及商品当前价格(展示价,结算时重新定价)
// @Tags         购物车模块
// @Produce      json
// @Param        userId path int true "用户ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/cart/{userId} [get]
func (h *CartHandler) ListCart(c *gin.Context) {
	var param dto.CartUserParam
	if err := c.ShouldBindUri(&param); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), param.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateItem 修改条目数量
// @Summary      修改购物车条目数量
// @Description  覆盖式修改,数量必须大于0
// @Tags         购物车模块
// @Accept       json
// @Produce      json
// @Param        userId path int true "用户ID"
// @Param        lineId path int true "条目ID"
// @Param        request body dto.UpdateCartItemRequest true "数量"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/{userId}/items/{lineId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var param dto.CartLineParam
	if err := c.ShouldBindUri(&param); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	err := h.updateUseCase.Execute(c.Request.Context(), appcart.UpdateItemRequest{
		UserID:   param.UserID,
		LineID:   param.LineID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "修改成功"})
}

// RemoveItem 移除条目
// @Summary      移除购物车条目
// @Tags         购物车模块
// @Produce      json
// @Param        userId path int true "用户ID"
// @Param        lineId path int true "条目ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/{userId}/items/{lineId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var param dto.CartLineParam
	if err := c.ShouldBindUri(&param); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	err := h.removeUseCase.Execute(c.Request.Context(), appcart.RemoveItemRequest{
		UserID: param.UserID,
		LineID: param.LineID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "移除成功"})
}
