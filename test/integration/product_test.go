package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：商品模块集成测试

// TestProductCRUD 测试商品增删改查
func TestProductCRUD(t *testing.T) {
	RequireServer(t)

	// 创建
	productID := CreateTestProduct(t, "CRUD测试商品", 29900)

	// 查询详情
	resp := GetJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID))
	require.Equal(t, 0, resp.Code, "商品详情查询失败: %s", resp.Message)

	var data ProductData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "CRUD测试商品", data.Name)
	assert.Equal(t, int64(29900), data.Price)
	assert.Equal(t, "299.00", data.PriceYuan)

	// 更新
	updateReq := map[string]interface{}{
		"name":        "CRUD测试商品改",
		"description": "改过了",
		"price":       27900,
		"stock":       80,
		"category_id": 1,
	}
	updateResp := PutJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), updateReq)
	require.Equal(t, 0, updateResp.Code, "商品更新失败: %s", updateResp.Message)

	resp = GetJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID))
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(27900), data.Price)

	// 删除
	delResp := DeleteJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID))
	require.Equal(t, 0, delResp.Code, "商品删除失败: %s", delResp.Message)

	// 删除后查询应该404
	resp = GetJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID))
	assert.Equal(t, 40402, resp.Code, "删除后查询应该返回商品不存在")

	t.Logf("✓ 商品CRUD验证通过")
}

// TestProductValidation 测试商品参数校验
func TestProductValidation(t *testing.T) {
	RequireServer(t)

	t.Run("价格为0应失败", func(t *testing.T) {
		req := map[string]interface{}{
			"name":  "非法商品",
			"price": 0,
			"stock": 10,
		}
		resp := PostJSON(t, BaseURL+"/products", req)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("名称为空应失败", func(t *testing.T) {
		req := map[string]interface{}{
			"name":  "",
			"price": 1000,
			"stock": 10,
		}
		resp := PostJSON(t, BaseURL+"/products", req)
		assert.NotEqual(t, 0, resp.Code)
	})
}

// TestOrderNotFound 测试订单不存在
func TestOrderNotFound(t *testing.T) {
	RequireServer(t)

	resp := GetJSON(t, BaseURL+"/orders/999999999")
	assert.Equal(t, 40403, resp.Code, "不存在的订单应该返回40403")
}
