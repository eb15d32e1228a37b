package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// 幂等记录保留时长,超过后同一Key视为新请求
const idempotencyTTL = 24 * time.Hour

// IdempotencyStore 结算幂等存储
// 设计说明：
// 1. 客户端通过Idempotency-Key请求头声明"这是同一次结算"
// 2. SETNX占位:第一个请求占到位并写入订单ID,重复请求直接返回已有订单
// 3. Key设计：idem:checkout:{user_id}:{key}
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore 创建幂等存储
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Reserve 尝试占用幂等Key
// 返回(true, 0, nil)表示占位成功,本次请求执行结算;
// 返回(false, orderID, nil)表示Key已被占用,orderID为已完成结算的订单
// (orderID为0说明先前的结算还在进行中或已失败,调用方按冲突处理)
func (s *IdempotencyStore) Reserve(ctx context.Context, userID uint, key string) (bool, uint, error) {
	k := idempotencyKey(userID, key)

	ok, err := s.client.SetNX(ctx, k, "pending", idempotencyTTL).Result()
	if err != nil {
		return false, 0, apperrors.Wrap(err, "写入幂等记录失败")
	}
	if ok {
		return true, 0, nil
	}

	val, err := s.client.Get(ctx, k).Result()
	if err != nil && err != redis.Nil {
		return false, 0, apperrors.Wrap(err, "读取幂等记录失败")
	}

	orderID, _ := strconv.ParseUint(val, 10, 64)
	return false, uint(orderID), nil
}

// Complete 结算成功后绑定订单ID
func (s *IdempotencyStore) Complete(ctx context.Context, userID uint, key string, orderID uint) error {
	k := idempotencyKey(userID, key)

	if err := s.client.Set(ctx, k, strconv.FormatUint(uint64(orderID), 10), idempotencyTTL).Err(); err != nil {
		return apperrors.Wrap(err, "更新幂等记录失败")
	}
	return nil
}

// Release 结算失败后释放占位,允许客户端用同一Key重试
func (s *IdempotencyStore) Release(ctx context.Context, userID uint, key string) error {
	if err := s.client.Del(ctx, idempotencyKey(userID, key)).Err(); err != nil {
		return apperrors.Wrap(err, "释放幂等记录失败")
	}
	return nil
}

func idempotencyKey(userID uint, key string) string {
	return fmt.Sprintf("idem:checkout:%d:%s", userID, key)
}
