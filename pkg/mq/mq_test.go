package mq

import (
	"testing"
)

// TestNewPublisher_InvalidURL 测试非法URL直接返回错误
func TestNewPublisher_InvalidURL(t *testing.T) {
	_, err := NewPublisher("not-a-url", "estore.events", "topic")
	if err == nil {
		t.Fatal("期望连接失败，实际返回nil")
	}
}

// TestNewConsumer_InvalidURL 测试非法URL直接返回错误
func TestNewConsumer_InvalidURL(t *testing.T) {
	_, err := NewConsumer("not-a-url", "estore.events", "estore.orders", []string{"order.*"})
	if err == nil {
		t.Fatal("期望连接失败，实际返回nil")
	}
}

// 集成测试（需要本地RabbitMQ）见 test/integration
