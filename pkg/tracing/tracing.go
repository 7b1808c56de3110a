// Package tracing 提供基于OpenTelemetry的链路追踪
//
// # 核心概念
//
//   - Trace：一次完整的请求链路（HTTP请求 → 服务 → 仓储）
//   - Span：一个操作单元，如 BookService.CreateBook
//   - SpanContext：TraceID/SpanID，用于日志与追踪关联
//
// # 使用示例
//
//	shutdown, err := tracing.InitTracer("bookshelf-api", "localhost:4317")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shutdown(context.Background())
//
//	func (s *service) CreateBook(ctx context.Context, in CreateBookInput) (b *Book, err error) {
//	    ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.CreateBook")
//	    defer func() { tracing.Finish(span, err) }()
//	    ...
//	}
//
// 未调用InitTracer时，otel全局Provider为noop实现，StartSpan开销可以忽略，
// 因此单元测试无需任何追踪配置。
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// InitTracer 初始化全局TracerProvider
//
// 参数：
//   - serviceName: 服务名称（Jaeger UI中的分组依据）
//   - endpoint: OTLP gRPC端点，如 localhost:4317
//
// 返回的shutdown函数必须在程序退出前调用，否则可能丢失最后一批Span
func InitTracer(serviceName, endpoint string) (func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(), // 禁用TLS（生产环境应启用）
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}

	return shutdown, nil
}

// StartSpan 创建一个新的Span
// 必须使用返回的ctx调用下游函数，否则无法构建调用树
func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName)
}

// Finish 根据err设置Span状态并结束Span
// 业务错误（4xx）只标记事件，不标记为Error，避免告警噪音
func Finish(span trace.Span, err error) {
	defer span.End()

	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "")
	case apperrors.IsDomainError(err):
		span.AddEvent("domain_error", trace.WithAttributes(semconv.ExceptionMessage(err.Error())))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// ExtractTraceID 从Context提取TraceID（用于关联日志）
func ExtractTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().TraceID().String()
}

// ExtractSpanID 从Context提取SpanID
func ExtractSpanID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().SpanID().String()
}
