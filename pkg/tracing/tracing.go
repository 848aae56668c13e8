package tracing

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

const ServiceName = "exam-prep-backend"

// Tracer 未初始化 provider 时走 otel 的全局 noop 实现
var Tracer = otel.Tracer(ServiceName)

func InitTracer(serviceName, collectorEndpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp, nil
}

// GinMiddleware 每个请求一个 span，附带路由分组（student / author / admin）与状态码
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx, span := Tracer.Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPMethodKey.String(c.Request.Method),
				semconv.HTTPRouteKey.String(route),
				RouteGroupKey.String(RouteGroup(route)),
			))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(semconv.HTTPStatusCodeKey.Int(status))
		if status >= 500 {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
		if user, ok := c.Get(UserIDContextKey); ok {
			if id, ok := user.(uint); ok {
				span.SetAttributes(attribute.Int64("user.id", int64(id)))
			}
		}
	}
}

// RouteGroupKey 按角色划分的接口分组
const RouteGroupKey = attribute.Key("exam_prep.route_group")

// UserIDContextKey 认证中间件写入的用户 ID，用于 span 标注
const UserIDContextKey = "tracing.userID"

// RouteGroup /api/student/... -> student；其余 /api 接口为 common，非 /api 为 system
func RouteGroup(route string) string {
	rest, ok := strings.CutPrefix(route, "/api/")
	if !ok {
		return "system"
	}
	group, _, _ := strings.Cut(rest, "/")
	switch group {
	case "student", "author", "admin":
		return group
	default:
		return "common"
	}
}
