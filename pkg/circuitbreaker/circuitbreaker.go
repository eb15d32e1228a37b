// Package circuitbreaker 实现熔断器模式
//
// 三种状态：
// - CLOSED：正常放行，统计连续失败次数，达到阈值转OPEN
// - OPEN：快速失败，不调用下游；超过冷却时间后转HALF_OPEN
// - HALF_OPEN：放行探测请求；成功转CLOSED，失败转回OPEN
//
// 本项目用于保护商品缓存的Redis读路径：Redis持续故障时直接打到MySQL，
// 避免每个请求都等Redis超时。
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

// String 状态转字符串（便于日志）
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开，请求被拒绝
var ErrOpenState = errors.New("circuit breaker is open")

// Options 熔断器配置
type Options struct {
	// FailureThreshold 连续失败多少次后打开熔断器
	FailureThreshold int
	// OpenTimeout OPEN状态持续时间，之后进入HALF_OPEN
	OpenTimeout time.Duration
	// HalfOpenMaxCalls HALF_OPEN状态允许的探测请求数
	HalfOpenMaxCalls int
}

// DefaultOptions 默认配置：连续5次失败熔断，冷却10秒
func DefaultOptions() Options {
	return Options{
		FailureThreshold: 5,
		OpenTimeout:      10 * time.Second,
		HalfOpenMaxCalls: 1,
	}
}

// Breaker 熔断器
type Breaker struct {
	mu sync.Mutex

	opts Options

	state         State
	failures      int       // CLOSED状态下的连续失败次数
	openedAt      time.Time // 进入OPEN状态的时间
	halfOpenCalls int       // HALF_OPEN状态已放行的探测数
}

// New 创建熔断器
func New(opts Options) *Breaker {
	if opts.FailureThreshold <= 0 {
		opts.FailureThreshold = 5
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = 10 * time.Second
	}
	if opts.HalfOpenMaxCalls <= 0 {
		opts.HalfOpenMaxCalls = 1
	}
	return &Breaker{opts: opts, state: StateClosed}
}

// State 返回当前状态
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshLocked()
	return b.state
}

// Execute 执行受保护的调用
// 熔断器打开时直接返回ErrOpenState，调用方应走降级路径
func (b *Breaker) Execute(fn func() error) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := fn()
	b.record(err == nil)
	return err
}

// allow 判断是否放行当前请求
func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refreshLocked()

	switch b.state {
	case StateClosed:
		return nil
	case StateHalfOpen:
		if b.halfOpenCalls >= b.opts.HalfOpenMaxCalls {
			return ErrOpenState
		}
		b.halfOpenCalls++
		return nil
	default:
		return ErrOpenState
	}
}

// record 记录调用结果并驱动状态转换
func (b *Breaker) record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		if success {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.opts.FailureThreshold {
			b.trip()
		}
	case StateHalfOpen:
		if success {
			// 下游恢复，关闭熔断器
			b.state = StateClosed
			b.failures = 0
			b.halfOpenCalls = 0
			return
		}
		b.trip()
	}
}

// trip 打开熔断器（调用方需持有锁）
func (b *Breaker) trip() {
	b.state = StateOpen
	b.openedAt = time.Now()
	b.halfOpenCalls = 0
}

// refreshLocked OPEN状态超时后转入HALF_OPEN（调用方需持有锁）
func (b *Breaker) refreshLocked() {
	if b.state == StateOpen && time.Since(b.openedAt) >= b.opts.OpenTimeout {
		b.state = StateHalfOpen
		b.halfOpenCalls = 0
	}
}
