package biz

import (
	"context"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

var (
	ErrMedicationNotFound      = kerrors.NotFound("MEDICATION_NOT_FOUND", "medication not found or inactive")
	ErrMedicationAlreadyExists = kerrors.BadRequest("MEDICATION_ALREADY_EXISTS", "medication already exists")
)

type Medication struct {
	ID          int64
	Name        string
	FunctionMed string
	Dosage      string
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// Prescriptions 仅在按用户查询时填充
	Prescriptions []*Prescription
}

type MedicationRepo interface {
	CreateMedication(ctx context.Context, m *Medication) (*Medication, error)
	// FindMedication 按名称和剂量查找，不区分状态
	FindMedication(ctx context.Context, name, dosage string) (*Medication, error)
	GetMedicationByID(ctx context.Context, id int64) (*Medication, error)
	ListActiveMedications(ctx context.Context) ([]*Medication, error)
	// ListMedicationsByUser 返回该用户存在有效处方的药品，附带这些处方
	ListMedicationsByUser(ctx context.Context, userID int64) ([]*Medication, error)
	UpdateActiveMedication(ctx context.Context, m *Medication) (*Medication, error)
	DeactivateMedication(ctx context.Context, id int64) (*Medication, error)
}

type MedicationUseCase struct {
	repo MedicationRepo
	log  *log.Helper
}

func NewMedicationUseCase(repo MedicationRepo, logger log.Logger) *MedicationUseCase {
	return &MedicationUseCase{
		repo: repo,
		log:  log.NewHelper(log.With(logger, "module", "usecase/medication")),
	}
}

func (uc *MedicationUseCase) Create(ctx context.Context, name, functionMed, dosage string) (*Medication, error) {
	if m, _ := uc.repo.FindMedication(ctx, name, dosage); m != nil {
		return nil, ErrMedicationAlreadyExists
	}
	return uc.repo.CreateMedication(ctx, &Medication{
		Name:        name,
		FunctionMed: functionMed,
		Dosage:      dosage,
		Status:      true,
	})
}

func (uc *MedicationUseCase) List(ctx context.Context) ([]*Medication, error) {
	return uc.repo.ListActiveMedications(ctx)
}

func (uc *MedicationUseCase) ListByUser(ctx context.Context, userID int64) ([]*Medication, error) {
	return uc.repo.ListMedicationsByUser(ctx, userID)
}

// Get 按 ID 查询，停用的药品同样返回
func (uc *MedicationUseCase) Get(ctx context.Context, id int64) (*Medication, error) {
	return uc.repo.GetMedicationByID(ctx, id)
}

func (uc *MedicationUseCase) Update(ctx context.Context, m *Medication) (*Medication, error) {
	return uc.repo.UpdateActiveMedication(ctx, m)
}

func (uc *MedicationUseCase) Delete(ctx context.Context, id int64) (*Medication, error) {
	return uc.repo.DeactivateMedication(ctx, id)
}
