package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sober-studio/medtrack/internal/biz"
	"github.com/sober-studio/medtrack/internal/data/model"
	"gorm.io/gorm"
)

var _ biz.HistoryRepo = (*historyRepo)(nil)

type historyRepo struct {
	data *Data
	log  *log.Helper
}

func NewHistoryRepo(data *Data, logger log.Logger) biz.HistoryRepo {
	return &historyRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/history")),
	}
}

func (r *historyRepo) CreateHistory(ctx context.Context, h *biz.History) (*biz.History, error) {
	his := &model.History{
		PrescriptionID: h.PrescriptionID,
		CurrentDate:    h.CurrentDate,
		Status:         h.Status,
	}
	if err := r.data.DB(ctx).Create(his).Error; err != nil {
		return nil, err
	}
	return historyToBiz(his), nil
}

func (r *historyRepo) GetHistoryByID(ctx context.Context, id int64) (*biz.History, error) {
	var his model.History
	if err := r.data.DB(ctx).Where("id = ?", id).First(&his).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrHistoryNotFound
		}
		return nil, err
	}
	return historyToBiz(&his), nil
}

func (r *historyRepo) ListActiveHistories(ctx context.Context) ([]*biz.History, error) {
	var list []*model.History
	if err := r.data.DB(ctx).Where("status = ?", true).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return historiesToBiz(list), nil
}

func (r *historyRepo) ListHistoriesByUser(ctx context.Context, userID int64) ([]*biz.History, error) {
	owned := r.data.DB(ctx).
		Model(&model.Prescription{}).
		Select("id").
		Where("user_id = ?", userID)

	var list []*model.History
	err := r.data.DB(ctx).
		Where("prescription_id IN (?)", owned).
		Preload("Prescription.Medication").
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return historiesToBiz(list), nil
}

func (r *historyRepo) UpdateHistory(ctx context.Context, h *biz.History) (*biz.History, error) {
	// status 可能为 false，必须用 map 显式更新
	res := r.data.DB(ctx).
		Model(&model.History{}).
		Where("id = ?", h.ID).
		Updates(map[string]interface{}{
			"current_at": h.CurrentDate,
			"status":     h.Status,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, biz.ErrHistoryNotFound
	}
	return r.GetHistoryByID(ctx, h.ID)
}

func (r *historyRepo) DeleteHistory(ctx context.Context, id int64) (*biz.History, error) {
	var deleted *biz.History
	err := r.data.InTx(ctx, func(ctx context.Context) error {
		h, err := r.GetHistoryByID(ctx, id)
		if err != nil {
			return err
		}
		if err := r.data.DB(ctx).Delete(&model.History{}, id).Error; err != nil {
			return err
		}
		deleted = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func historyToBiz(h *model.History) *biz.History {
	return &biz.History{
		ID:             h.ID,
		PrescriptionID: h.PrescriptionID,
		CurrentDate:    h.CurrentDate,
		Status:         h.Status,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
		Prescription:   prescriptionToBiz(h.Prescription),
	}
}

func historiesToBiz(list []*model.History) []*biz.History {
	out := make([]*biz.History, 0, len(list))
	for _, h := range list {
		out = append(out, historyToBiz(h))
	}
	return out
}
