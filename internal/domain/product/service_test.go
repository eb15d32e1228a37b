package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo 内存商品仓储,测试用
type memoryRepo struct {
	products map[uint]*Product
	nextID   uint
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{products: make(map[uint]*Product), nextID: 1}
}

func (r *memoryRepo) Create(ctx context.Context, p *Product) error {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id uint) (*Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, ErrProductNotFound
}

func (r *memoryRepo) LockByID(ctx context.Context, id uint) (*Product, error) {
	return r.FindByID(ctx, id)
}

func (r *memoryRepo) List(ctx context.Context, params ListParams) ([]*Product, error) {
	var list []*Product
	for _, p := range r.products {
		if params.CategoryID != 0 && p.CategoryID != params.CategoryID {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *memoryRepo) Update(ctx context.Context, p *Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func TestCreateProduct(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		p, err := svc.CreateProduct(ctx, "机械键盘", "87键", 29900, 100, 1)
		require.NoError(t, err)
		assert.NotZero(t, p.ID)
		assert.Equal(t, int64(29900), p.Price)
	})

	t.Run("价格越界应失败", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, "商品", "", 0, 10, 1)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = svc.CreateProduct(ctx, "商品", "", 100000000, 10, 1)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("库存为负应失败", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, "商品", "", 1000, -1, 1)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})
}

func TestListProductsByCategory(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, "键盘", "", 29900, 10, 1)
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, "鼠标", "", 9900, 10, 1)
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, "显示器", "", 129900, 10, 2)
	require.NoError(t, err)

	all, err := svc.ListProducts(ctx, ListParams{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	cat1, err := svc.ListProducts(ctx, ListParams{CategoryID: 1})
	require.NoError(t, err)
	assert.Len(t, cat1, 2)
}

func TestUpdateProduct(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, "键盘", "旧描述", 29900, 10, 1)
	require.NoError(t, err)

	t.Run("正常更新", func(t *testing.T) {
		updated, err := svc.UpdateProduct(ctx, p.ID, "键盘Pro", "新描述", 27900, 8, 1)
		require.NoError(t, err)
		assert.Equal(t, "键盘Pro", updated.Name)
		assert.Equal(t, int64(27900), updated.Price)
	})

	t.Run("商品不存在应失败", func(t *testing.T) {
		_, err := svc.UpdateProduct(ctx, 999, "x", "", 1000, 1, 1)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("价格越界应失败", func(t *testing.T) {
		_, err := svc.UpdateProduct(ctx, p.ID, "键盘Pro", "", 0, 8, 1)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestDeleteProduct(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, "键盘", "", 29900, 10, 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))

	_, err = svc.GetProductByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, p.ID), ErrProductNotFound)
}
