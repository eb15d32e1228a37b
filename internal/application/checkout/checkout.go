package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xiebiao/estore/internal/domain/cart"
	"github.com/xiebiao/estore/internal/domain/order"
	"github.com/xiebiao/estore/internal/domain/product"
	apperrors "github.com/xiebiao/estore/pkg/errors"
	"github.com/xiebiao/estore/pkg/metrics"
	"github.com/xiebiao/estore/pkg/tracing"
)

// TxManager 事务管理器接口(由mysql.TxManager实现,测试中用假实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 订单事件发布接口(由mq.Publisher实现)
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload interface{}) error
}

// IdempotencyStore 幂等存储接口(由redis.IdempotencyStore实现)
type IdempotencyStore interface {
	Reserve(ctx context.Context, userID uint, key string) (bool, uint, error)
	Complete(ctx context.Context, userID uint, key string, orderID uint) error
	Release(ctx context.Context, userID uint, key string) error
}

// CheckoutUseCase 结算用例:把可变购物车原子地转化为不可变订单
// 教学要点:这是整个项目最核心的用例
// 涉及:事务处理、并发控制、价格快照、幂等
type CheckoutUseCase struct {
	cartRepo    cart.Repository
	productRepo product.Repository
	orderRepo   order.Repository
	txManager   TxManager

	// 以下为可选协作者,为nil时对应能力关闭
	publisher EventPublisher
	idemStore IdempotencyStore
}

// NewCheckoutUseCase 创建结算用例
func NewCheckoutUseCase(
	cartRepo cart.Repository,
	productRepo product.Repository,
	orderRepo order.Repository,
	txManager TxManager,
	publisher EventPublisher,
	idemStore IdempotencyStore,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		txManager:   txManager,
		publisher:   publisher,
		idemStore:   idemStore,
	}
}

// CheckoutRequest 结算请求DTO
type CheckoutRequest struct {
	UserID uint // 购物车归属用户ID(路径参数)

	// IdempotencyKey 客户端声明的幂等键(请求头,可为空)
	// 为空时每次请求都执行一次结算
	IdempotencyKey string
}

// CheckoutResponse 结算响应DTO
type CheckoutResponse struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	LineCount int    `json:"line_count"` // 订单明细条数
	Status    string `json:"status"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// OrderCreatedEvent 结算成功后发布的订单事件
type OrderCreatedEvent struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	UserID    uint   `json:"user_id"`
	Total     int64  `json:"total"`
	ItemCount int    `json:"item_count"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行结算
// 教学重点:防止同一购物车被结算两次的完整流程
//
// 核心问题:并发双重结算
// 场景:用户双击"结算"按钮,两个请求同时到达
// 错误实现:
//  1. 读取购物车 → 两个请求都读到相同的3个条目
//  2. 各自创建订单 → 同一批商品生成两个订单!
//
// 正确实现:悲观锁
//  1. SELECT ... FOR UPDATE锁定购物车行
//  2. 第二个事务阻塞,等第一个事务COMMIT后只能看到空购物车
//  3. 空购物车直接失败,不会产生第二个订单
//
// 价格快照:对每个商品行SELECT FOR UPDATE后取价,同一行只读一次价格,
// 算总额和写明细用的是同一个数,结算窗口内的改价不会造成总额与明细不一致
func (uc *CheckoutUseCase) Execute(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "checkout.Execute")
	defer span.End()

	start := time.Now()

	// 幂等检查:同一个Key的重复请求直接返回已有订单
	if uc.idemStore != nil && req.IdempotencyKey != "" {
		reserved, orderID, err := uc.idemStore.Reserve(ctx, req.UserID, req.IdempotencyKey)
		if err != nil {
			// 幂等存储故障不阻塞结算主流程,降级为非幂等
			log.Printf("[checkout] 幂等检查失败,降级执行: %v", err)
		} else if !reserved {
			if orderID == 0 {
				return nil, apperrors.New(apperrors.ErrCodeDuplicateEntry, "结算正在处理中,请勿重复提交")
			}
			existing, err := uc.orderRepo.FindByID(ctx, orderID)
			if err != nil {
				return nil, err
			}
			return toResponse(existing), nil
		}
	}

	result, err := uc.checkout(ctx, req.UserID)

	// 记录幂等结果(在事务之外,失败只影响后续重试语义,不影响本次结算)
	if uc.idemStore != nil && req.IdempotencyKey != "" {
		if err != nil {
			if rerr := uc.idemStore.Release(ctx, req.UserID, req.IdempotencyKey); rerr != nil {
				log.Printf("[checkout] 释放幂等记录失败: %v", rerr)
			}
		} else {
			if cerr := uc.idemStore.Complete(ctx, req.UserID, req.IdempotencyKey, result.ID); cerr != nil {
				log.Printf("[checkout] 绑定幂等记录失败: %v", cerr)
			}
		}
	}

	if err != nil {
		metrics.IncCounter(metrics.CheckoutFailedTotal)
		return nil, err
	}

	metrics.IncCounter(metrics.CheckoutTotal)
	metrics.ObserveHistogram(metrics.CheckoutDuration, time.Since(start).Seconds())
	metrics.ObserveHistogram(metrics.OrderAmountCents, float64(result.Total))

	// 事务提交后发布订单事件(尽力而为:发布失败只记日志,订单已经生效)
	uc.publishOrderCreated(ctx, result)

	return toResponse(result), nil
}

// checkout 结算事务主体
// 步骤:锁购物车 → 锁商品定价 → 建订单 → 清购物车,同生共死
func (uc *CheckoutUseCase) checkout(ctx context.Context, userID uint) (*order.Order, error) {
	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// ========================================
		// 步骤1:锁定购物车(悲观锁,防止并发双重结算)
		// ========================================
		// LockByUserID执行:SELECT * FROM cart_items WHERE user_id = ? FOR UPDATE
		lines, err := uc.cartRepo.LockByUserID(txCtx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperrors.ErrEmptyCart
		}

		// ========================================
		// 步骤2:锁定商品并取价格快照
		// ========================================
		// 教学要点:价格来自数据库当前行,而不是购物车展示时的价格
		// 每个商品行只读一次价格,总额与明细必然一致
		var total int64
		lineIDs := make([]uint, len(lines))
		items := make([]order.Item, len(lines))
		for i, line := range lines {
			// LockByID执行:SELECT * FROM products WHERE id = ? FOR UPDATE
			p, err := uc.productRepo.LockByID(txCtx, line.ProductID)
			if err != nil {
				if apperrors.GetAppError(err).Code == apperrors.ErrCodeProductNotFound {
					// 购物车引用了已删除的商品:指名道姓报错,整单失败,零写入
					return apperrors.Newf(apperrors.ErrCodeStaleCart,
						"购物车中的商品已下架(商品ID:%d),请移除后重新结算", line.ProductID)
				}
				return err
			}

			items[i] = order.Item{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     p.Price, // 锁定时刻的价格
			}
			total += p.Price * int64(line.Quantity)
			lineIDs[i] = line.ID
		}

		// ========================================
		// 步骤3:创建订单(含明细)
		// ========================================
		orderNo := order.GenerateOrderNo()
		newOrder, err := order.NewOrder(orderNo, userID, items, total)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// ========================================
		// 步骤4:清空购物车(只删步骤1捕获的条目)
		// ========================================
		// 教学要点:按快照中的条目ID删除,结算过程中并发加入的
		// 新条目不受影响,留在购物车里等下次结算
		if err := uc.cartRepo.DeleteByIDs(txCtx, lineIDs); err != nil {
			return err
		}

		// 事务自动COMMIT,锁释放
		result = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// publishOrderCreated 发布order.created事件
func (uc *CheckoutUseCase) publishOrderCreated(ctx context.Context, o *order.Order) {
	if uc.publisher == nil {
		return
	}

	event := OrderCreatedEvent{
		OrderID:   o.ID,
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		Total:     o.Total,
		ItemCount: len(o.Items),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
	if err := uc.publisher.PublishJSON(ctx, "order.created", event); err != nil {
		log.Printf("[checkout] 发布订单事件失败(订单%s已生效): %v", o.OrderNo, err)
	}
}

// toResponse 构建响应DTO
func toResponse(o *order.Order) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:   o.ID,
		OrderNo:   o.OrderNo,
		Total:     o.Total,
		TotalYuan: formatPrice(o.Total),
		LineCount: len(o.Items),
		Status:    o.Status.String(),
		Message:   "结算成功",
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatPrice 格式化价格(分→元)
func formatPrice(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}
