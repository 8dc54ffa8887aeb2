package service

import (
	"context"

	v1 "github.com/sober-studio/medtrack/api/medtrack/v1"
	"github.com/sober-studio/medtrack/internal/biz"
	"github.com/sober-studio/medtrack/internal/pkg/auth"
)

var _ v1.PassportHTTPServer = (*PassportService)(nil)

type PassportService struct {
	uc *biz.PassportUseCase
}

func NewPassportService(uc *biz.PassportUseCase) *PassportService {
	return &PassportService{uc: uc}
}

func (s *PassportService) Login(ctx context.Context, req *v1.LoginRequest) (*v1.LoginReply, error) {
	token, err := s.uc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return &v1.LoginReply{Token: token}, nil
}

// Logout 撤销请求头中的令牌；登出接口不经过认证中间件，已失效的令牌也可登出
func (s *PassportService) Logout(ctx context.Context, _ *v1.LogoutRequest) (*v1.MessageReply, error) {
	token, err := auth.TokenFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.uc.Logout(ctx, token); err != nil {
		return nil, err
	}
	return &v1.MessageReply{Message: "logged out"}, nil
}
