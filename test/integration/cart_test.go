package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：购物车模块集成测试
// 验证加购合并、数量修改、条目移除和展示金额计算

// TestCartAddAndMerge 测试加购与数量合并
func TestCartAddAndMerge(t *testing.T) {
	RequireServer(t)

	productID := CreateTestProduct(t, "加购测试商品", 1000)
	userID := TestUserID()

	// 第一次加购2个
	AddToCart(t, userID, productID, 2)
	// 重复加购3个,应该合并为5个
	AddToCart(t, userID, productID, 3)

	resp := GetJSON(t, fmt.Sprintf("%s/cart/%d", BaseURL, userID))
	require.Equal(t, 0, resp.Code)

	var data CartData
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	require.Equal(t, 1, data.ItemCount, "重复加购不应该产生新条目")
	assert.Equal(t, 5, data.List[0].Quantity, "数量应该合并为5")
	assert.Equal(t, int64(5000), data.Total, "展示总额应该是50.00元")

	t.Logf("✓ 加购合并验证通过")
}

// TestCartAddMissingProduct 测试加购不存在的商品
func TestCartAddMissingProduct(t *testing.T) {
	RequireServer(t)

	userID := TestUserID()
	req := map[string]interface{}{
		"product_id": 999999999,
		"quantity":   1,
	}

	resp := PostJSON(t, fmt.Sprintf("%s/cart/%d/items", BaseURL, userID), req)
	assert.Equal(t, 40402, resp.Code, "加购不存在的商品应该返回商品不存在")
}

// TestCartUpdateAndRemove 测试数量修改与条目移除
func TestCartUpdateAndRemove(t *testing.T) {
	RequireServer(t)

	productID := CreateTestProduct(t, "修改测试商品", 1000)
	userID := TestUserID()
	AddToCart(t, userID, productID, 2)

	resp := GetJSON(t, fmt.Sprintf("%s/cart/%d", BaseURL, userID))
	require.Equal(t, 0, resp.Code)

	var data CartData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.List, 1)
	lineID := data.List[0].LineID

	// 覆盖式修改数量
	updateResp := PutJSON(t, fmt.Sprintf("%s/cart/%d/items/%d", BaseURL, userID, lineID),
		map[string]interface{}{"quantity": 7})
	require.Equal(t, 0, updateResp.Code, "修改数量失败: %s", updateResp.Message)

	resp = GetJSON(t, fmt.Sprintf("%s/cart/%d", BaseURL, userID))
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 7, data.List[0].Quantity)

	// 数量为0应该被参数校验拒绝
	badResp := PutJSON(t, fmt.Sprintf("%s/cart/%d/items/%d", BaseURL, userID, lineID),
		map[string]interface{}{"quantity": 0})
	assert.NotEqual(t, 0, badResp.Code, "数量为0应该失败")

	// 移除条目
	delResp := DeleteJSON(t, fmt.Sprintf("%s/cart/%d/items/%d", BaseURL, userID, lineID))
	require.Equal(t, 0, delResp.Code, "移除条目失败: %s", delResp.Message)

	resp = GetJSON(t, fmt.Sprintf("%s/cart/%d", BaseURL, userID))
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Zero(t, data.ItemCount, "移除后购物车应该为空")

	t.Logf("✓ 数量修改与移除验证通过")
}

// TestCartRemoveMissingLine 测试移除不存在的条目
func TestCartRemoveMissingLine(t *testing.T) {
	RequireServer(t)

	userID := TestUserID()
	resp := DeleteJSON(t, fmt.Sprintf("%s/cart/%d/items/999999999", BaseURL, userID))
	assert.Equal(t, 40404, resp.Code, "移除不存在的条目应该返回条目不存在")
}
