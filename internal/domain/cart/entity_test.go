package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		line, err := NewLine(100, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(100), line.UserID)
		assert.Equal(t, uint(1), line.ProductID)
		assert.Equal(t, 2, line.Quantity)
	})

	t.Run("数量非正应失败", func(t *testing.T) {
		_, err := NewLine(100, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = NewLine(100, 1, -1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestLineMerge(t *testing.T) {
	line, err := NewLine(100, 1, 2)
	require.NoError(t, err)

	// 重复加购合并数量
	require.NoError(t, line.Merge(3))
	assert.Equal(t, 5, line.Quantity)

	// 合并数量必须为正
	assert.ErrorIs(t, line.Merge(0), ErrInvalidQuantity)
	assert.Equal(t, 5, line.Quantity, "非法合并不应该改变数量")
}

func TestLineSetQuantity(t *testing.T) {
	line, err := NewLine(100, 1, 2)
	require.NoError(t, err)

	// 覆盖式修改
	require.NoError(t, line.SetQuantity(7))
	assert.Equal(t, 7, line.Quantity)

	assert.ErrorIs(t, line.SetQuantity(0), ErrInvalidQuantity)
	assert.ErrorIs(t, line.SetQuantity(-3), ErrInvalidQuantity)
	assert.Equal(t, 7, line.Quantity)
}
