package biz

import (
	"context"
	"errors"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

var (
	ErrUserNotFound      = kerrors.NotFound("USER_NOT_FOUND", "user not found or inactive")
	ErrUserAlreadyExists = kerrors.Conflict("USER_ALREADY_EXISTS", "user already exists")
)

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	BirthDate    time.Time
	Status       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate 为空的字段保持不变
type UserUpdate struct {
	Name      string
	Email     string
	Password  string
	BirthDate time.Time
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	ListActiveUsers(ctx context.Context) ([]*User, error)
	// UpdateActiveUser 仅更新 status 为 true 的用户，否则返回 ErrUserNotFound
	UpdateActiveUser(ctx context.Context, user *User) (*User, error)
	DeactivateUser(ctx context.Context, id int64) (*User, error)
}

type UserUseCase struct {
	repo UserRepo
	log  *log.Helper
}

func NewUserUseCase(repo UserRepo, logger log.Logger) *UserUseCase {
	return &UserUseCase{
		repo: repo,
		log:  log.NewHelper(log.With(logger, "module", "usecase/user")),
	}
}

func (uc *UserUseCase) Create(ctx context.Context, name, email, password string, birthDate time.Time) (*User, error) {
	if u, _ := uc.repo.GetUserByEmail(ctx, email); u != nil {
		return nil, ErrUserAlreadyExists
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	return uc.repo.CreateUser(ctx, &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		BirthDate:    birthDate,
		Status:       true,
	})
}

func (uc *UserUseCase) List(ctx context.Context) ([]*User, error) {
	return uc.repo.ListActiveUsers(ctx)
}

func (uc *UserUseCase) Get(ctx context.Context, id int64) (*User, error) {
	u, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.Status {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (uc *UserUseCase) Update(ctx context.Context, id int64, in *UserUpdate) (*User, error) {
	u := &User{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		BirthDate: in.BirthDate,
	}
	if in.Email != "" {
		if other, err := uc.repo.GetUserByEmail(ctx, in.Email); err == nil && other.ID != id {
			return nil, ErrUserAlreadyExists
		} else if err != nil && !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}
	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	return uc.repo.UpdateActiveUser(ctx, u)
}

// Delete 软删除：status 置为 false
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (*User, error) {
	return uc.repo.DeactivateUser(ctx, id)
}
