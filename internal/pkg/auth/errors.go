package auth

import "github.com/go-kratos/kratos/v2/errors"

// 会话生命周期错误，调用方通过 errors.Is 区分
var (
	ErrMissingCredential   = errors.Unauthorized("MISSING_CREDENTIAL", "missing bearer token")
	ErrTokenInvalid        = errors.Forbidden("TOKEN_INVALID", "forbidden")
	ErrTokenRevoked        = errors.Forbidden("TOKEN_REVOKED", "forbidden")
	ErrAuthorizationDenied = errors.Forbidden("AUTHORIZATION_DENIED", "you are not allowed to access this resource")
	ErrTokenGenerate       = errors.InternalServer("TOKEN_GENERATE_ERROR", "failed to generate token")
)

// Public 返回对外暴露的错误形态：撤销与无效对调用方不可区分
func Public(err error) error {
	if errors.Is(err, ErrTokenRevoked) {
		return ErrTokenInvalid
	}
	return err
}
