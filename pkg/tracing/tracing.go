// Package tracing 提供基于OpenTelemetry的分布式追踪
//
// 单体服务里追踪的价值在于定位慢请求：一次结算跨越
// 参数校验 → 行锁 → 定价 → 写订单 → 清购物车，Span能回答慢在哪一步。
//
// 通过OTLP gRPC导出到collector（如Jaeger、Tempo）。endpoint为空时
// 不安装导出器，StartSpan退化为no-op，业务代码无需感知。
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/xiebiao/estore"

// ShutdownFunc 关闭追踪器，flush未导出的Span
type ShutdownFunc func(ctx context.Context) error

// InitTracer 初始化全局TracerProvider
//
// 参数：
//
//	serviceName: 服务名（显示在追踪系统里）
//	endpoint: OTLP gRPC collector地址（如 localhost:4317），为空则不导出
func InitTracer(ctx context.Context, serviceName, endpoint string) (ShutdownFunc, error) {
	if endpoint == "" {
		// 未配置collector：保持默认的no-op全局Provider
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP导出器失败: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("创建Resource失败: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	// W3C TraceContext传播（跨服务透传trace id）
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return provider.Shutdown, nil
}

// Tracer 返回本服务的Tracer
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartSpan 开启一个Span
// 用法：
//
//	ctx, span := tracing.StartSpan(ctx, "checkout.execute")
//	defer span.End()
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name)
}
