package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sober-studio/medtrack/internal/biz"
	"github.com/sober-studio/medtrack/internal/data/model"
	"gorm.io/gorm"
)

var _ biz.PrescriptionRepo = (*prescriptionRepo)(nil)

type prescriptionRepo struct {
	data *Data
	log  *log.Helper
}

func NewPrescriptionRepo(data *Data, logger log.Logger) biz.PrescriptionRepo {
	return &prescriptionRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/prescription")),
	}
}

func (r *prescriptionRepo) CreatePrescription(ctx context.Context, p *biz.Prescription) (*biz.Prescription, error) {
	pre := &model.Prescription{
		UserID:       p.UserID,
		MedicationID: p.MedicationID,
		Observation:  p.Observation,
		Frequency:    p.Frequency,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Status:       p.Status,
	}
	if err := r.data.DB(ctx).Create(pre).Error; err != nil {
		return nil, err
	}
	return prescriptionToBiz(pre), nil
}

func (r *prescriptionRepo) GetPrescriptionByID(ctx context.Context, id int64) (*biz.Prescription, error) {
	var pre model.Prescription
	if err := r.data.DB(ctx).Where("id = ?", id).First(&pre).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrPrescriptionNotFound
		}
		return nil, err
	}
	return prescriptionToBiz(&pre), nil
}

func (r *prescriptionRepo) ListActivePrescriptions(ctx context.Context) ([]*biz.Prescription, error) {
	var pres []*model.Prescription
	if err := r.data.DB(ctx).Where("status = ?", true).Order("id").Find(&pres).Error; err != nil {
		return nil, err
	}
	out := make([]*biz.Prescription, 0, len(pres))
	for _, p := range pres {
		out = append(out, prescriptionToBiz(p))
	}
	return out, nil
}

func (r *prescriptionRepo) UpdateActivePrescription(ctx context.Context, p *biz.Prescription) (*biz.Prescription, error) {
	res := r.data.DB(ctx).
		Model(&model.Prescription{}).
		Where("id = ? AND status = ?", p.ID, true).
		Updates(model.Prescription{
			UserID:       p.UserID,
			MedicationID: p.MedicationID,
			Observation:  p.Observation,
			Frequency:    p.Frequency,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, biz.ErrPrescriptionNotFound
	}
	return r.GetPrescriptionByID(ctx, p.ID)
}

func (r *prescriptionRepo) DeactivatePrescription(ctx context.Context, id int64) (*biz.Prescription, error) {
	res := r.data.DB(ctx).
		Model(&model.Prescription{}).
		Where("id = ? AND status = ?", id, true).
		Update("status", false)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, biz.ErrPrescriptionNotFound
	}
	return r.GetPrescriptionByID(ctx, id)
}

func prescriptionToBiz(p *model.Prescription) *biz.Prescription {
	if p == nil {
		return nil
	}
	return &biz.Prescription{
		ID:           p.ID,
		UserID:       p.UserID,
		MedicationID: p.MedicationID,
		Observation:  p.Observation,
		Frequency:    p.Frequency,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Medication:   medicationToBiz(p.Medication),
	}
}
