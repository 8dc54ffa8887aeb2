package auth

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/auth/jwt"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/sober-studio/medtrack/internal/pkg/auth/store"
)

// DefaultTTL 令牌默认有效期
const DefaultTTL = 2 * time.Hour

// Claims 令牌载荷，业务字段只有 id
type Claims struct {
	UserID int64 `json:"id"`
	jwtv5.RegisteredClaims
}

// TokenService 令牌服务接口，负责签发、校验和撤销会话令牌
type TokenService interface {
	// Issue 签发令牌
	Issue(ctx context.Context, userID int64) (string, error)
	// Verify 校验令牌：先查撤销表，再校验签名与过期时间
	Verify(ctx context.Context, tokenStr string) (*Claims, error)
	// Revoke 撤销令牌，不会失败
	Revoke(ctx context.Context, tokenStr string)
	// UserIDFromContext 从已认证的 Context 中获取用户ID
	UserIDFromContext(ctx context.Context) (int64, error)
	// GetSecretKey 获取密钥
	GetSecretKey() []byte
}

var _ TokenService = (*JWTTokenService)(nil)

// JWTTokenService 基于 HS256 的令牌服务
type JWTTokenService struct {
	secretKey []byte
	ttl       time.Duration
	store     store.RevocationStore
	now       func() time.Time
	log       *log.Helper
}

// Option 令牌服务可选配置
type Option func(*JWTTokenService)

// WithClock 替换时钟，便于测试过期逻辑
func WithClock(now func() time.Time) Option {
	return func(s *JWTTokenService) {
		s.now = now
	}
}

func WithLogger(logger log.Logger) Option {
	return func(s *JWTTokenService) {
		s.log = log.NewHelper(log.With(logger, "module", "auth/token"))
	}
}

func NewJWTTokenService(secretKey string, ttl time.Duration, store store.RevocationStore, opts ...Option) *JWTTokenService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &JWTTokenService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		store:     store,
		now:       time.Now,
		log:       log.NewHelper(log.With(log.GetLogger(), "module", "auth/token")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *JWTTokenService) Issue(ctx context.Context, userID int64) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(s.ttl)),
		},
	}
	tokenStr, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		s.log.WithContext(ctx).Errorf("failed to sign token: %v", err)
		return "", ErrTokenGenerate.WithCause(err)
	}
	return tokenStr, nil
}

func (s *JWTTokenService) Verify(ctx context.Context, tokenStr string) (*Claims, error) {
	if s.store.IsRevoked(tokenStr) {
		return nil, ErrTokenRevoked
	}
	claims := &Claims{}
	_, err := jwtv5.ParseWithClaims(tokenStr, claims, s.keyFunc,
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithExpirationRequired(),
		jwtv5.WithTimeFunc(s.now),
	)
	if err != nil {
		s.log.WithContext(ctx).Debugf("token rejected: %v", err)
		return nil, ErrTokenInvalid.WithCause(err)
	}
	return claims, nil
}

func (s *JWTTokenService) Revoke(ctx context.Context, tokenStr string) {
	// 记录令牌自身的过期时间，供清理任务使用；解析失败时保留为零值
	var expiresAt time.Time
	claims := &Claims{}
	if _, _, err := jwtv5.NewParser().ParseUnverified(tokenStr, claims); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	s.store.Revoke(tokenStr, expiresAt)
	s.log.WithContext(ctx).Infof("token revoked, user=%d", claims.UserID)
}

func (s *JWTTokenService) UserIDFromContext(ctx context.Context) (int64, error) {
	claims, err := FromContext(ctx)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func (s *JWTTokenService) GetSecretKey() []byte {
	return s.secretKey
}

func (s *JWTTokenService) keyFunc(*jwtv5.Token) (interface{}, error) {
	return s.secretKey, nil
}

// NewContext 将已校验的载荷放入 Context
func NewContext(ctx context.Context, claims *Claims) context.Context {
	return jwt.NewContext(ctx, claims)
}

// FromContext 获取认证中间件写入的载荷
func FromContext(ctx context.Context) (*Claims, error) {
	c, ok := jwt.FromContext(ctx)
	if !ok {
		return nil, ErrMissingCredential
	}
	claims, ok := c.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
