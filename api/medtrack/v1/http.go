package v1

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/transport/http"
)

// binder 把请求的 body / path 参数绑定到入参
type binder func(ctx http.Context, in interface{}) error

func bindBody(ctx http.Context, in interface{}) error { return ctx.Bind(in) }

func bindVars(ctx http.Context, in interface{}) error { return ctx.BindVars(in) }

func bindBodyAndVars(ctx http.Context, in interface{}) error {
	if err := ctx.Bind(in); err != nil {
		return err
	}
	return ctx.BindVars(in)
}

func bindNone(http.Context, interface{}) error { return nil }

// handler 构造路由处理函数：设置 operation、绑定参数、执行中间件链并写出结果
// 参数解析失败时仍以空请求经过中间件链，认证先于解析错误返回
func handler[Req any, Reply any](
	operation string,
	code int,
	bind binder,
	call func(context.Context, *Req) (*Reply, error),
) http.HandlerFunc {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, operation)
		var in Req
		var req interface{} = &in
		bindErr := bind(ctx, &in)
		if bindErr != nil {
			req = nil
		}
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			if bindErr != nil {
				return nil, bindErr
			}
			return call(ctx, req.(*Req))
		})
		out, err := h(ctx, req)
		if err != nil {
			return err
		}
		return ctx.Result(code, out.(*Reply))
	}
}

// ParseDate 支持 YYYY-MM-DD 与 RFC 3339，空字符串返回零值
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// MessageReply 只有提示信息的返回
type MessageReply struct {
	Message string `json:"message"`
}

// IDRequest 仅包含路径参数 id
type IDRequest struct {
	ID int64 `json:"id" validate:"gt=0"`
}

func (r *IDRequest) Validate() error { return check(r) }

const (
	statusOK      = stdhttp.StatusOK
	statusCreated = stdhttp.StatusCreated
)
