package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/estore/internal/domain/product"
	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// 商品缓存过期时间
// 加入随机因素可以进一步防止缓存雪崩,这里先用固定值保持简单
const productCacheTTL = 10 * time.Minute

// ErrCacheMiss 缓存未命中(调用方回源数据库)
var ErrCacheMiss = apperrors.New(apperrors.ErrCodeRedisError, "缓存未命中")

// ProductCache 商品缓存(Cache-Aside模式)
// 设计说明：
// 1. 读路径：先查缓存,未命中查数据库并回填
// 2. 写路径：更新数据库后删除缓存(而不是更新缓存,避免并发写入脏数据)
// 3. Key设计：product:{id}
type ProductCache struct {
	client *redis.Client
}

// NewProductCache 创建商品缓存
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// Get 读取缓存的商品
func (c *ProductCache) Get(ctx context.Context, id uint) (*product.Product, error) {
	key := productKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "读取商品缓存失败")
	}

	var p product.Product
	if err := json.Unmarshal(data, &p); err != nil {
		// 缓存数据损坏,当作未命中处理,回源后会覆盖
		return nil, ErrCacheMiss
	}

	return &p, nil
}

// Set 回填商品缓存
func (c *ProductCache) Set(ctx context.Context, p *product.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return apperrors.Wrap(err, "序列化商品失败")
	}

	if err := c.client.Set(ctx, productKey(p.ID), data, productCacheTTL).Err(); err != nil {
		return apperrors.Wrap(err, "写入商品缓存失败")
	}

	return nil
}

// Delete 删除商品缓存(商品更新/删除后调用)
func (c *ProductCache) Delete(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		return apperrors.Wrap(err, "删除商品缓存失败")
	}
	return nil
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}
