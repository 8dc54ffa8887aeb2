package biz

import (
	"context"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

var ErrPrescriptionNotFound = kerrors.NotFound("PRESCRIPTION_NOT_FOUND", "prescription not found or inactive")

type Prescription struct {
	ID           int64
	UserID       int64
	MedicationID int64
	Observation  string
	Frequency    string
	StartDate    time.Time
	EndDate      time.Time
	Status       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Medication   *Medication
}

type PrescriptionRepo interface {
	CreatePrescription(ctx context.Context, p *Prescription) (*Prescription, error)
	GetPrescriptionByID(ctx context.Context, id int64) (*Prescription, error)
	ListActivePrescriptions(ctx context.Context) ([]*Prescription, error)
	UpdateActivePrescription(ctx context.Context, p *Prescription) (*Prescription, error)
	DeactivatePrescription(ctx context.Context, id int64) (*Prescription, error)
}

// PrescriptionUseCase 创建与停用处方时在同一事务内写入状态历史
type PrescriptionUseCase struct {
	repo        PrescriptionRepo
	users       UserRepo
	medications MedicationRepo
	history     HistoryRepo
	tx          Transaction
	now         func() time.Time
	log         *log.Helper
}

func NewPrescriptionUseCase(
	repo PrescriptionRepo,
	users UserRepo,
	medications MedicationRepo,
	history HistoryRepo,
	tx Transaction,
	logger log.Logger,
) *PrescriptionUseCase {
	return &PrescriptionUseCase{
		repo:        repo,
		users:       users,
		medications: medications,
		history:     history,
		tx:          tx,
		now:         time.Now,
		log:         log.NewHelper(log.With(logger, "module", "usecase/prescription")),
	}
}

func (uc *PrescriptionUseCase) Create(ctx context.Context, p *Prescription) (*Prescription, error) {
	if err := uc.checkReferences(ctx, p); err != nil {
		return nil, err
	}
	p.Status = true

	var created *Prescription
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = uc.repo.CreatePrescription(ctx, p)
		if err != nil {
			return err
		}
		_, err = uc.history.CreateHistory(ctx, &History{
			PrescriptionID: created.ID,
			CurrentDate:    uc.now(),
			Status:         true,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *PrescriptionUseCase) List(ctx context.Context) ([]*Prescription, error) {
	return uc.repo.ListActivePrescriptions(ctx)
}

func (uc *PrescriptionUseCase) Get(ctx context.Context, id int64) (*Prescription, error) {
	p, err := uc.repo.GetPrescriptionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Status {
		return nil, ErrPrescriptionNotFound
	}
	return p, nil
}

func (uc *PrescriptionUseCase) Update(ctx context.Context, p *Prescription) (*Prescription, error) {
	if err := uc.checkReferences(ctx, p); err != nil {
		return nil, err
	}
	return uc.repo.UpdateActivePrescription(ctx, p)
}

// Delete 软删除处方并追加一条 status=false 的历史
func (uc *PrescriptionUseCase) Delete(ctx context.Context, id int64) (*Prescription, error) {
	var deactivated *Prescription
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		deactivated, err = uc.repo.DeactivatePrescription(ctx, id)
		if err != nil {
			return err
		}
		_, err = uc.history.CreateHistory(ctx, &History{
			PrescriptionID: deactivated.ID,
			CurrentDate:    uc.now(),
			Status:         false,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return deactivated, nil
}

// checkReferences 校验关联的用户与药品存在且有效，未设置的字段跳过
func (uc *PrescriptionUseCase) checkReferences(ctx context.Context, p *Prescription) error {
	if p.UserID != 0 {
		u, err := uc.users.GetUserByID(ctx, p.UserID)
		if err != nil {
			return err
		}
		if !u.Status {
			return ErrUserNotFound
		}
	}
	if p.MedicationID != 0 {
		m, err := uc.medications.GetMedicationByID(ctx, p.MedicationID)
		if err != nil {
			return err
		}
		if !m.Status {
			return ErrMedicationNotFound
		}
	}
	return nil
}
