package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sober-studio/medtrack/internal/biz"
	"github.com/sober-studio/medtrack/internal/data/model"
	"gorm.io/gorm"
)

var _ biz.UserRepo = (*userRepo)(nil)

type userRepo struct {
	data *Data
	log  *log.Helper
}

func NewUserRepo(data *Data, logger log.Logger) biz.UserRepo {
	return &userRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/user")),
	}
}

func (r *userRepo) CreateUser(ctx context.Context, u *biz.User) (*biz.User, error) {
	user := &model.User{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		BirthDate:    u.BirthDate,
		Status:       u.Status,
	}
	if err := r.data.DB(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, biz.ErrUserAlreadyExists
		}
		return nil, err
	}
	return r.toBiz(user), nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*biz.User, error) {
	var user model.User
	if err := r.data.DB(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrUserNotFound
		}
		return nil, err
	}
	return r.toBiz(&user), nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*biz.User, error) {
	var user model.User
	if err := r.data.DB(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrUserNotFound
		}
		return nil, err
	}
	return r.toBiz(&user), nil
}

func (r *userRepo) ListActiveUsers(ctx context.Context) ([]*biz.User, error) {
	var users []*model.User
	if err := r.data.DB(ctx).Where("status = ?", true).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]*biz.User, 0, len(users))
	for _, u := range users {
		out = append(out, r.toBiz(u))
	}
	return out, nil
}

func (r *userRepo) UpdateActiveUser(ctx context.Context, u *biz.User) (*biz.User, error) {
	// 结构体更新会忽略零值字段
	res := r.data.DB(ctx).
		Model(&model.User{}).
		Where("id = ? AND status = ?", u.ID, true).
		Updates(model.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			BirthDate:    u.BirthDate,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, biz.ErrUserAlreadyExists
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, biz.ErrUserNotFound
	}
	return r.GetUserByID(ctx, u.ID)
}

func (r *userRepo) DeactivateUser(ctx context.Context, id int64) (*biz.User, error) {
	res := r.data.DB(ctx).
		Model(&model.User{}).
		Where("id = ? AND status = ?", id, true).
		Update("status", false)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, biz.ErrUserNotFound
	}
	return r.GetUserByID(ctx, id)
}

func (r *userRepo) toBiz(u *model.User) *biz.User {
	return &biz.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		BirthDate:    u.BirthDate,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
