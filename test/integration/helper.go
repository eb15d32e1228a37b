package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：集成测试辅助工具
// 这些测试需要一个运行中的服务(go run ./cmd/api)和配套的MySQL/Redis,
// 服务不可达时自动跳过,不影响单元测试的执行

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ProductData 商品响应数据
type ProductData struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	Stock     int    `json:"stock"`
}

// CartData 购物车响应数据
type CartData struct {
	UserID    uint   `json:"user_id"`
	ItemCount int    `json:"item_count"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	List      []struct {
		LineID    uint  `json:"line_id"`
		ProductID uint  `json:"product_id"`
		Quantity  int   `json:"quantity"`
		Subtotal  int64 `json:"subtotal"`
	} `json:"list"`
}

// CheckoutData 结算响应数据
type CheckoutData struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	LineCount int    `json:"line_count"`
	Status    string `json:"status"`
}

// RequireServer 服务不可达时跳过测试
func RequireServer(t *testing.T) {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("服务未启动,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// doJSON 发送请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, headers map[string]string) *Response {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, "POST", url, data, nil)
}

// PostJSONWithHeaders 发送带自定义请求头的POST请求
func PostJSONWithHeaders(t *testing.T, url string, data interface{}, headers map[string]string) *Response {
	return doJSON(t, "POST", url, data, headers)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) *Response {
	return doJSON(t, "GET", url, nil, nil)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, "PUT", url, data, nil)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string) *Response {
	return doJSON(t, "DELETE", url, nil, nil)
}

// CreateTestProduct 上架测试商品并返回商品ID
func CreateTestProduct(t *testing.T, name string, price int64) uint {
	req := map[string]interface{}{
		"name":        name,
		"description": "集成测试用商品",
		"price":       price,
		"stock":       100,
		"category_id": 1,
	}

	resp := PostJSON(t, BaseURL+"/products", req)
	require.Equal(t, 0, resp.Code, "商品上架失败: %s", resp.Message)

	var data ProductData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析商品响应失败")

	return data.ID
}

// AddToCart 往购物车加入商品
func AddToCart(t *testing.T, userID, productID uint, quantity int) {
	req := map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	}

	resp := PostJSON(t, fmt.Sprintf("%s/cart/%d/items", BaseURL, userID), req)
	require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)
}

// TestUserID 生成基于时间戳的测试用户ID,避免多次运行互相污染购物车
func TestUserID() uint {
	return uint(time.Now().UnixNano() % 1000000000)
}
