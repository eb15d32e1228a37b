package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	items := []Item{
		{ProductID: 1, Quantity: 1, Price: 1000},
		{ProductID: 2, Quantity: 2, Price: 750},
	}

	t.Run("正常创建", func(t *testing.T) {
		o, err := NewOrder("ORD123", 100, items, 2500)
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, o.Status, "结算即支付,新订单状态应该是Paid")
		assert.Equal(t, int64(2500), o.Total)
		assert.Len(t, o.Items, 2)
	})

	t.Run("明细为空应失败", func(t *testing.T) {
		_, err := NewOrder("ORD123", 100, nil, 0)
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("数量非正应失败", func(t *testing.T) {
		bad := []Item{{ProductID: 1, Quantity: 0, Price: 1000}}
		_, err := NewOrder("ORD123", 100, bad, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("总额与明细不一致应失败", func(t *testing.T) {
		_, err := NewOrder("ORD123", 100, items, 9999)
		assert.ErrorIs(t, err, ErrTotalMismatch)
	})
}

func TestItemSubtotal(t *testing.T) {
	item := Item{Quantity: 3, Price: 750}
	assert.Equal(t, int64(2250), item.Subtotal())
}

func TestCalculateTotal(t *testing.T) {
	o := &Order{Items: []Item{
		{Quantity: 1, Price: 1000},
		{Quantity: 2, Price: 750},
	}}
	assert.Equal(t, int64(2500), o.CalculateTotal())
}

func TestIsOwnedBy(t *testing.T) {
	o := &Order{UserID: 100}
	assert.True(t, o.IsOwnedBy(100))
	assert.False(t, o.IsOwnedBy(200))
}

func TestGenerateOrderNo(t *testing.T) {
	no1 := GenerateOrderNo()
	no2 := GenerateOrderNo()

	assert.True(t, strings.HasPrefix(no1, "ORD"), "订单号应该以ORD开头")
	assert.NotEqual(t, no1, no2, "连续生成的订单号不应该相同")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Paid", StatusPaid.String())
	assert.Equal(t, "Unknown", Status(99).String())
}
