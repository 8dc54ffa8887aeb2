package biz

import (
	"context"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

var ErrHistoryNotFound = kerrors.NotFound("HISTORY_NOT_FOUND", "history not found")

// History 处方状态历史记录
type History struct {
	ID             int64
	PrescriptionID int64
	CurrentDate    time.Time
	Status         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Prescription   *Prescription
}

type HistoryRepo interface {
	CreateHistory(ctx context.Context, h *History) (*History, error)
	GetHistoryByID(ctx context.Context, id int64) (*History, error)
	ListActiveHistories(ctx context.Context) ([]*History, error)
	// ListHistoriesByUser 附带处方及药品信息
	ListHistoriesByUser(ctx context.Context, userID int64) ([]*History, error)
	UpdateHistory(ctx context.Context, h *History) (*History, error)
	// DeleteHistory 物理删除，返回被删除的记录
	DeleteHistory(ctx context.Context, id int64) (*History, error)
}

type HistoryUseCase struct {
	repo          HistoryRepo
	prescriptions PrescriptionRepo
	log           *log.Helper
}

func NewHistoryUseCase(repo HistoryRepo, prescriptions PrescriptionRepo, logger log.Logger) *HistoryUseCase {
	return &HistoryUseCase{
		repo:          repo,
		prescriptions: prescriptions,
		log:           log.NewHelper(log.With(logger, "module", "usecase/history")),
	}
}

func (uc *HistoryUseCase) Create(ctx context.Context, h *History) (*History, error) {
	if _, err := uc.prescriptions.GetPrescriptionByID(ctx, h.PrescriptionID); err != nil {
		return nil, err
	}
	return uc.repo.CreateHistory(ctx, h)
}

func (uc *HistoryUseCase) List(ctx context.Context) ([]*History, error) {
	return uc.repo.ListActiveHistories(ctx)
}

func (uc *HistoryUseCase) ListByUser(ctx context.Context, userID int64) ([]*History, error) {
	histories, err := uc.repo.ListHistoriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(histories) == 0 {
		return nil, ErrHistoryNotFound
	}
	return histories, nil
}

func (uc *HistoryUseCase) Get(ctx context.Context, id int64) (*History, error) {
	return uc.repo.GetHistoryByID(ctx, id)
}

func (uc *HistoryUseCase) Update(ctx context.Context, h *History) (*History, error) {
	return uc.repo.UpdateHistory(ctx, h)
}

func (uc *HistoryUseCase) Delete(ctx context.Context, id int64) (*History, error) {
	return uc.repo.DeleteHistory(ctx, id)
}
