package integration

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：结算流程集成测试
//
// 结算是本项目的核心,验证以下关键点:
// 1. 购物车→订单的原子转化
// 2. 价格快照(结算后改价不影响订单)
// 3. 悲观锁防止并发双重结算
// 4. 幂等键(Idempotency-Key)

// TestCheckoutFlow 测试完整结算流程
func TestCheckoutFlow(t *testing.T) {
	RequireServer(t)

	// 商品A 10.00元,商品B 7.50元
	productA := CreateTestProduct(t, "结算测试商品A", 1000)
	productB := CreateTestProduct(t, "结算测试商品B", 750)

	userID := TestUserID()
	AddToCart(t, userID, productA, 1)
	AddToCart(t, userID, productB, 2)

	// 结算:10.00 + 7.50×2 = 25.00元
	resp := PostJSON(t, fmt.Sprintf("%s/cart/%d/checkout", BaseURL, userID), nil)
	require.Equal(t, 0, resp.Code, "结算失败: %s", resp.Message)

	var data CheckoutData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)

	assert.NotZero(t, data.OrderID)
	assert.NotEmpty(t, data.OrderNo)
	assert.Equal(t, int64(2500), data.Total, "订单金额应该是25.00元")
	assert.Equal(t, "25.00", data.TotalYuan)
	assert.Equal(t, 2, data.LineCount, "两个条目对应两条明细")
	assert.Equal(t, "Paid", data.Status)

	// 结算后购物车应该为空
	cartResp := GetJSON(t, fmt.Sprintf("%s/cart/%d", BaseURL, userID))
	require.Equal(t, 0, cartResp.Code)

	var cartData CartData
	err = json.Unmarshal(cartResp.Data, &cartData)
	require.NoError(t, err)
	assert.Zero(t, cartData.ItemCount, "结算后购物车应该为空")

	// 订单详情可查,明细价格是下单时的快照
	orderResp := GetJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, data.OrderID))
	require.Equal(t, 0, orderResp.Code, "订单详情查询失败: %s", orderResp.Message)

	t.Logf("✓ 结算成功,订单号: %s,金额: %s元", data.OrderNo, data.TotalYuan)
}

// TestCheckoutEmptyCart 测试空购物车结算
func TestCheckoutEmptyCart(t *testing.T) {
	RequireServer(t)

	userID := TestUserID()
	resp := PostJSON(t, fmt.Sprintf("%s/cart/%d/checkout", BaseURL, userID), nil)

	assert.Equal(t, 40001, resp.Code, "空购物车结算应该返回40001")
	t.Logf("✓ 空购物车正确被拒绝: %s", resp.Message)
}

// TestCheckoutPriceSnapshot 测试价格快照
func TestCheckoutPriceSnapshot(t *testing.T) {
	RequireServer(t)

	productID := CreateTestProduct(t, "快照测试商品", 1000)
	userID := TestUserID()
	AddToCart(t, userID, productID, 1)

	// 结算
	resp := PostJSON(t, fmt.Sprintf("%s/cart/%d/checkout", BaseURL, userID), nil)
	require.Equal(t, 0, resp.Code, "结算失败: %s", resp.Message)

	var data CheckoutData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(1000), data.Total)

	// 结算后涨价
	updateReq := map[string]interface{}{
		"name":        "快照测试商品",
		"description": "涨价后",
		"price":       9999,
		"stock":       100,
		"category_id": 1,
	}
	updateResp := PutJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), updateReq)
	require.Equal(t, 0, updateResp.Code, "改价失败: %s", updateResp.Message)

	// 历史订单金额不变
	orderResp := GetJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, data.OrderID))
	require.Equal(t, 0, orderResp.Code)

	var orderData struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(orderResp.Data, &orderData))
	assert.Equal(t, int64(1000), orderData.Total, "商品调价不应该影响历史订单")

	t.Logf("✓ 价格快照验证通过")
}

// TestCheckoutConcurrent 测试并发双重结算
// 预期:只有一个请求成功,另一个返回"购物车为空",订单只有一个
func TestCheckoutConcurrent(t *testing.T) {
	RequireServer(t)

	productID := CreateTestProduct(t, "并发测试商品", 1000)
	userID := TestUserID()
	AddToCart(t, userID, productID, 2)

	const workers = 2
	var wg sync.WaitGroup
	codes := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := PostJSON(t, fmt.Sprintf("%s/cart/%d/checkout", BaseURL, userID), nil)
			codes[idx] = resp.Code
		}(i)
	}
	wg.Wait()

	var succeeded, emptyCart int
	for _, code := range codes {
		switch code {
		case 0:
			succeeded++
		case 40001:
			emptyCart++
		}
	}

	assert.Equal(t, 1, succeeded, "只应该有一个请求结算成功")
	assert.Equal(t, 1, emptyCart, "另一个请求应该看到空购物车")

	t.Logf("✓ 并发结算: %d个成功, %d个空购物车", succeeded, emptyCart)
}

// TestCheckoutIdempotencyKey 测试幂等键
func TestCheckoutIdempotencyKey(t *testing.T) {
	RequireServer(t)

	productID := CreateTestProduct(t, "幂等测试商品", 1000)
	userID := TestUserID()
	AddToCart(t, userID, productID, 1)

	headers := map[string]string{
		"Idempotency-Key": fmt.Sprintf("it-%d", userID),
	}

	url := fmt.Sprintf("%s/cart/%d/checkout", BaseURL, userID)
	resp1 := PostJSONWithHeaders(t, url, nil, headers)
	require.Equal(t, 0, resp1.Code, "第一次结算失败: %s", resp1.Message)

	var data1 CheckoutData
	require.NoError(t, json.Unmarshal(resp1.Data, &data1))

	// 同一个Key重复请求,应该返回同一个订单而不是"购物车为空"
	resp2 := PostJSONWithHeaders(t, url, nil, headers)
	require.Equal(t, 0, resp2.Code, "重复请求应该命中幂等记录: %s", resp2.Message)

	var data2 CheckoutData
	require.NoError(t, json.Unmarshal(resp2.Data, &data2))
	assert.Equal(t, data1.OrderID, data2.OrderID, "应该返回同一个订单")

	t.Logf("✓ 幂等键验证通过,订单号: %s", data1.OrderNo)
}
