package debug

import (
	"context"

	"github.com/sober-studio/medtrack/internal/pkg/env"
)

type debugKey struct{}

// Info 存储调试数据的 map
type Info map[string]interface{}

// FromContext 从 Context 中获取调试信息
func FromContext(ctx context.Context) (Info, bool) {
	info, ok := ctx.Value(debugKey{}).(Info)
	return info, ok
}

// Set 向请求级调试信息写入一项，未经过 Filter 的 Context 忽略
func Set(ctx context.Context, key string, value interface{}) {
	if info, ok := FromContext(ctx); ok {
		info[key] = value
	}
}

func IsDebug() bool { return !env.IsProd() }
