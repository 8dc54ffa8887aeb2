package auth

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/selector"
	"github.com/go-kratos/kratos/v2/transport"
)

const (
	// HeaderAuthorization 认证请求头
	HeaderAuthorization = "Authorization"
	bearerScheme        = "Bearer"
)

// PathAccessConfig 路径访问配置
type PathAccessConfig struct {
	// 无需认证的路径
	PublicPaths map[string]struct{}
	// 认证后还需通过管理员校验的路径
	AdminPaths map[string]struct{}
}

// NewPathAccessConfig 创建路径访问配置
func NewPathAccessConfig(publicPaths, adminPaths []string) *PathAccessConfig {
	c := &PathAccessConfig{
		PublicPaths: make(map[string]struct{}, len(publicPaths)),
		AdminPaths:  make(map[string]struct{}, len(adminPaths)),
	}
	for _, path := range publicPaths {
		c.PublicPaths[path] = struct{}{}
	}
	for _, path := range adminPaths {
		c.AdminPaths[path] = struct{}{}
	}
	return c
}

// IsPublicPath 判断是否为公开路径
func IsPublicPath(ctx context.Context, operation string, config *PathAccessConfig) bool {
	return Match(operation, config.PublicPaths)
}

// IsAdminPath 判断是否为管理员路径
func IsAdminPath(ctx context.Context, operation string, config *PathAccessConfig) bool {
	return Match(operation, config.AdminPaths)
}

// Match 判断路径是否匹配，以 / 结尾的配置按前缀匹配
func Match(operation string, paths map[string]struct{}) bool {
	if _, ok := paths[operation]; ok {
		return true
	}
	for path := range paths {
		if len(path) > 0 && path[len(path)-1] == '/' && strings.HasPrefix(operation, path) {
			return true
		}
	}
	return false
}

// BearerToken 从 Authorization 头中取出令牌；缺失或格式错误均视为未认证
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrMissingCredential
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingCredential
	}
	return token, nil
}

// TokenFromContext 从传输层请求头读取令牌
func TokenFromContext(ctx context.Context) (string, error) {
	tr, ok := transport.FromServerContext(ctx)
	if !ok {
		return "", ErrMissingCredential
	}
	return BearerToken(tr.RequestHeader().Get(HeaderAuthorization))
}

// Authenticate 认证中间件：Anonymous -> Authenticated，失败直接拒绝
func Authenticate(tokenService TokenService) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			tokenStr, err := TokenFromContext(ctx)
			if err != nil {
				return nil, err
			}
			claims, err := tokenService.Verify(ctx, tokenStr)
			if err != nil {
				return nil, err
			}
			return handler(NewContext(ctx, claims), req)
		}
	}
}

// AdminGate 管理员校验中间件：不与令牌主体交叉比对
func AdminGate(gate *Gate) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			claim, ok := req.(EmailClaim)
			if !ok || !gate.IsAdmin(claim.GetEmail()) {
				return nil, ErrAuthorizationDenied
			}
			return handler(ctx, req)
		}
	}
}

// Middleware 创建认证中间件
func Middleware(tokenService TokenService, gate *Gate, config *PathAccessConfig) middleware.Middleware {
	return middleware.Chain(
		selector.Server(
			Authenticate(tokenService),
		).Match(func(ctx context.Context, operation string) bool {
			return !IsPublicPath(ctx, operation, config)
		}).Build(),
		selector.Server(
			AdminGate(gate),
		).Match(func(ctx context.Context, operation string) bool {
			return IsAdminPath(ctx, operation, config)
		}).Build(),
	)
}
