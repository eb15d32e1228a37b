package product

import (
	"context"
)

// Service 商品领域服务接口
// 封装目录管理的业务规则校验;结算引擎不经过本服务,直接走Repository的锁定读
type Service interface {
	// CreateProduct 创建商品
	// 业务规则: 价格1分~999999.99元,库存>=0
	CreateProduct(ctx context.Context, name, description string, price int64, stock int, categoryID uint) (*Product, error)

	// GetProductByID 根据ID获取商品详情
	GetProductByID(ctx context.Context, id uint) (*Product, error)

	// ListProducts 查询商品列表
	ListProducts(ctx context.Context, params ListParams) ([]*Product, error)

	// UpdateProduct 更新商品信息(名称/描述/价格/库存/分类)
	UpdateProduct(ctx context.Context, id uint, name, description string, price int64, stock int, categoryID uint) (*Product, error)

	// DeleteProduct 删除商品
	DeleteProduct(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建商品领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// 价格上限:999999.99元(分)
const maxPriceCents = 99999999

// CreateProduct 创建商品
func (s *service) CreateProduct(ctx context.Context, name, description string, price int64, stock int, categoryID uint) (*Product, error) {
	if price < 1 || price > maxPriceCents {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	p := NewProduct(name, description, price, stock, categoryID)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProductByID 根据ID获取商品
func (s *service) GetProductByID(ctx context.Context, id uint) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

// ListProducts 查询商品列表
func (s *service) ListProducts(ctx context.Context, params ListParams) ([]*Product, error) {
	return s.repo.List(ctx, params)
}

// UpdateProduct 更新商品
// 全量更新:价格和库存必须传合法值,名称/描述/分类为空表示不修改
func (s *service) UpdateProduct(ctx context.Context, id uint, name, description string, price int64, stock int, categoryID uint) (*Product, error) {
	if price < 1 || price > maxPriceCents {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.UpdateInfo(name, description, categoryID)
	if err := p.UpdatePrice(price); err != nil {
		return nil, err
	}
	if err := p.UpdateStock(stock); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct 删除商品
func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	// 先确认存在,保证404语义
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
