package biz

import (
	"context"
	"errors"
	"sync"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/sober-studio/medtrack/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials 账号不存在、已停用或密码错误统一返回，避免枚举用户
	ErrInvalidCredentials = kerrors.Unauthorized("INVALID_CREDENTIALS", "invalid credentials")
	ErrLogoutFailed       = kerrors.InternalServer("LOGOUT_FAILED", "failed to log out")
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

type PassportUseCase struct {
	auth auth.TokenService
	user UserRepo
	log  *log.Helper
}

func NewPassportUseCase(
	auth auth.TokenService,
	user UserRepo,
	logger log.Logger,
) *PassportUseCase {
	return &PassportUseCase{
		auth: auth,
		user: user,
		log:  log.NewHelper(log.With(logger, "module", "usecase/passport")),
	}
}

// Login 邮箱密码登录，成功返回会话令牌
func (uc *PassportUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.user.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// 与密码错误保持相近耗时
			_ = bcrypt.CompareHashAndPassword(fakeHash(), []byte(password))
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !checkPassword(password, user.PasswordHash) || !user.Status {
		uc.log.WithContext(ctx).Infof("login rejected for user %d", user.ID)
		return "", ErrInvalidCredentials
	}

	return uc.auth.Issue(ctx, user.ID)
}

// Logout 撤销当前令牌
func (uc *PassportUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrLogoutFailed
	}
	uc.auth.Revoke(ctx, token)
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func fakeHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("medtrack-placeholder"), bcrypt.DefaultCost)
	})
	return dummyHash
}
