package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sober-studio/medtrack/internal/biz"
	"github.com/sober-studio/medtrack/internal/data/model"
	"gorm.io/gorm"
)

var _ biz.MedicationRepo = (*medicationRepo)(nil)

type medicationRepo struct {
	data *Data
	log  *log.Helper
}

func NewMedicationRepo(data *Data, logger log.Logger) biz.MedicationRepo {
	return &medicationRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/medication")),
	}
}

func (r *medicationRepo) CreateMedication(ctx context.Context, m *biz.Medication) (*biz.Medication, error) {
	med := &model.Medication{
		Name:        m.Name,
		FunctionMed: m.FunctionMed,
		Dosage:      m.Dosage,
		Status:      m.Status,
	}
	if err := r.data.DB(ctx).Create(med).Error; err != nil {
		return nil, err
	}
	return medicationToBiz(med), nil
}

func (r *medicationRepo) FindMedication(ctx context.Context, name, dosage string) (*biz.Medication, error) {
	var med model.Medication
	if err := r.data.DB(ctx).Where("name = ? AND dosage = ?", name, dosage).First(&med).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrMedicationNotFound
		}
		return nil, err
	}
	return medicationToBiz(&med), nil
}

func (r *medicationRepo) GetMedicationByID(ctx context.Context, id int64) (*biz.Medication, error) {
	var med model.Medication
	if err := r.data.DB(ctx).Where("id = ?", id).First(&med).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrMedicationNotFound
		}
		return nil, err
	}
	return medicationToBiz(&med), nil
}

func (r *medicationRepo) ListActiveMedications(ctx context.Context) ([]*biz.Medication, error) {
	var meds []*model.Medication
	if err := r.data.DB(ctx).Where("status = ?", true).Order("id").Find(&meds).Error; err != nil {
		return nil, err
	}
	return medicationsToBiz(meds), nil
}

func (r *medicationRepo) ListMedicationsByUser(ctx context.Context, userID int64) ([]*biz.Medication, error) {
	active := r.data.DB(ctx).
		Model(&model.Prescription{}).
		Select("medication_id").
		Where("user_id = ? AND status = ?", userID, true)

	var meds []*model.Medication
	err := r.data.DB(ctx).
		Where("id IN (?)", active).
		Preload("Prescriptions", "user_id = ? AND status = ?", userID, true).
		Order("id").
		Find(&meds).Error
	if err != nil {
		return nil, err
	}
	return medicationsToBiz(meds), nil
}

func (r *medicationRepo) UpdateActiveMedication(ctx context.Context, m *biz.Medication) (*biz.Medication, error) {
	res := r.data.DB(ctx).
		Model(&model.Medication{}).
		Where("id = ? AND status = ?", m.ID, true).
		Updates(model.Medication{
			Name:        m.Name,
			FunctionMed: m.FunctionMed,
			Dosage:      m.Dosage,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, biz.ErrMedicationNotFound
	}
	return r.GetMedicationByID(ctx, m.ID)
}

func (r *medicationRepo) DeactivateMedication(ctx context.Context, id int64) (*biz.Medication, error) {
	res := r.data.DB(ctx).
		Model(&model.Medication{}).
		Where("id = ? AND status = ?", id, true).
		Update("status", false)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, biz.ErrMedicationNotFound
	}
	return r.GetMedicationByID(ctx, id)
}

func medicationToBiz(m *model.Medication) *biz.Medication {
	if m == nil {
		return nil
	}
	out := &biz.Medication{
		ID:          m.ID,
		Name:        m.Name,
		FunctionMed: m.FunctionMed,
		Dosage:      m.Dosage,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range m.Prescriptions {
		out.Prescriptions = append(out.Prescriptions, prescriptionToBiz(&m.Prescriptions[i]))
	}
	return out
}

func medicationsToBiz(meds []*model.Medication) []*biz.Medication {
	out := make([]*biz.Medication, 0, len(meds))
	for _, m := range meds {
		out = append(out, medicationToBiz(m))
	}
	return out
}
