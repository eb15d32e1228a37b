package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

var errDownstream = errors.New("downstream unavailable")

// TestBreaker_StaysClosedOnSuccess 测试成功调用不触发熔断
func TestBreaker_StaysClosedOnSuccess(t *testing.T) {
	b := New(Options{FailureThreshold: 3, OpenTimeout: time.Second})

	for i := 0; i < 10; i++ {
		if err := b.Execute(func() error { return nil }); err != nil {
			t.Fatalf("第%d次调用失败: %v", i+1, err)
		}
	}

	if b.State() != StateClosed {
		t.Errorf("状态错误: expected=CLOSED, got=%s", b.State())
	}
}

// TestBreaker_OpensAfterThreshold 测试连续失败达到阈值后熔断
func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := New(Options{FailureThreshold: 3, OpenTimeout: time.Minute})

	for i := 0; i < 3; i++ {
		_ = b.Execute(func() error { return errDownstream })
	}

	if b.State() != StateOpen {
		t.Fatalf("状态错误: expected=OPEN, got=%s", b.State())
	}

	// OPEN状态下快速失败，不调用下游
	called := false
	err := b.Execute(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrOpenState) {
		t.Errorf("期望ErrOpenState, got=%v", err)
	}
	if called {
		t.Error("OPEN状态不应调用下游")
	}
}

// TestBreaker_FailureCounterResets 测试成功调用重置失败计数
func TestBreaker_FailureCounterResets(t *testing.T) {
	b := New(Options{FailureThreshold: 3, OpenTimeout: time.Minute})

	_ = b.Execute(func() error { return errDownstream })
	_ = b.Execute(func() error { return errDownstream })
	_ = b.Execute(func() error { return nil }) // 重置计数
	_ = b.Execute(func() error { return errDownstream })
	_ = b.Execute(func() error { return errDownstream })

	if b.State() != StateClosed {
		t.Errorf("状态错误: expected=CLOSED, got=%s", b.State())
	}
}

// TestBreaker_HalfOpenRecovery 测试半开探测成功后恢复
func TestBreaker_HalfOpenRecovery(t *testing.T) {
	b := New(Options{FailureThreshold: 1, OpenTimeout: 10 * time.Millisecond})

	_ = b.Execute(func() error { return errDownstream })
	if b.State() != StateOpen {
		t.Fatalf("状态错误: expected=OPEN, got=%s", b.State())
	}

	// 等待冷却时间，进入HALF_OPEN
	time.Sleep(20 * time.Millisecond)
	if b.State() != StateHalfOpen {
		t.Fatalf("状态错误: expected=HALF_OPEN, got=%s", b.State())
	}

	// 探测成功，恢复CLOSED
	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("探测调用失败: %v", err)
	}
	if b.State() != StateClosed {
		t.Errorf("状态错误: expected=CLOSED, got=%s", b.State())
	}
}

// TestBreaker_HalfOpenFailureReopens 测试半开探测失败后重新熔断
func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := New(Options{FailureThreshold: 1, OpenTimeout: 10 * time.Millisecond})

	_ = b.Execute(func() error { return errDownstream })
	time.Sleep(20 * time.Millisecond)

	_ = b.Execute(func() error { return errDownstream })
	if b.State() != StateOpen {
		t.Errorf("状态错误: expected=OPEN, got=%s", b.State())
	}
}
