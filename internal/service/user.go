package service

import (
	"context"

	v1 "github.com/sober-studio/medtrack/api/medtrack/v1"
	"github.com/sober-studio/medtrack/internal/biz"
)

var _ v1.UserHTTPServer = (*UserService)(nil)

type UserService struct {
	uc *biz.UserUseCase
}

func NewUserService(uc *biz.UserUseCase) *UserService {
	return &UserService{uc: uc}
}

func (s *UserService) CreateUser(ctx context.Context, req *v1.CreateUserRequest) (*v1.UserReply, error) {
	u, err := s.uc.Create(ctx, req.Name, req.Email, req.Password, parseDate(req.BirthDate))
	if err != nil {
		return nil, err
	}
	return toUserReply(u), nil
}

func (s *UserService) ListUsers(ctx context.Context, _ *v1.ListUsersRequest) (*v1.ListUsersReply, error) {
	users, err := s.uc.List(ctx)
	if err != nil {
		return nil, err
	}
	reply := &v1.ListUsersReply{Users: make([]*v1.UserReply, 0, len(users))}
	for _, u := range users {
		reply.Users = append(reply.Users, toUserReply(u))
	}
	return reply, nil
}

func (s *UserService) GetUser(ctx context.Context, req *v1.IDRequest) (*v1.UserReply, error) {
	u, err := s.uc.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toUserReply(u), nil
}

func (s *UserService) UpdateUser(ctx context.Context, req *v1.UpdateUserRequest) (*v1.UserReply, error) {
	u, err := s.uc.Update(ctx, req.ID, &biz.UserUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		BirthDate: parseDate(req.BirthDate),
	})
	if err != nil {
		return nil, err
	}
	return toUserReply(u), nil
}

func (s *UserService) DeleteUser(ctx context.Context, req *v1.IDRequest) (*v1.UserReply, error) {
	u, err := s.uc.Delete(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toUserReply(u), nil
}
