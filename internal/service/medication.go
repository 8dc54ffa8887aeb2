package service

import (
	"context"

	v1 "github.com/sober-studio/medtrack/api/medtrack/v1"
	"github.com/sober-studio/medtrack/internal/biz"
)

var _ v1.MedicationHTTPServer = (*MedicationService)(nil)

type MedicationService struct {
	uc *biz.MedicationUseCase
}

func NewMedicationService(uc *biz.MedicationUseCase) *MedicationService {
	return &MedicationService{uc: uc}
}

func (s *MedicationService) CreateMedication(ctx context.Context, req *v1.CreateMedicationRequest) (*v1.MedicationReply, error) {
	m, err := s.uc.Create(ctx, req.Name, req.FunctionMed, req.Dosage)
	if err != nil {
		return nil, err
	}
	return toMedicationReply(m), nil
}

func (s *MedicationService) ListMedications(ctx context.Context, _ *v1.ListMedicationsRequest) (*v1.ListMedicationsReply, error) {
	ms, err := s.uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toMedicationsReply(ms), nil
}

func (s *MedicationService) ListUserMedications(ctx context.Context, req *v1.IDRequest) (*v1.ListMedicationsReply, error) {
	ms, err := s.uc.ListByUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toMedicationsReply(ms), nil
}

func (s *MedicationService) GetMedication(ctx context.Context, req *v1.IDRequest) (*v1.MedicationReply, error) {
	m, err := s.uc.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toMedicationReply(m), nil
}

func (s *MedicationService) UpdateMedication(ctx context.Context, req *v1.UpdateMedicationRequest) (*v1.MedicationReply, error) {
	m, err := s.uc.Update(ctx, &biz.Medication{
		ID:          req.ID,
		Name:        req.Name,
		FunctionMed: req.FunctionMed,
		Dosage:      req.Dosage,
	})
	if err != nil {
		return nil, err
	}
	return toMedicationReply(m), nil
}

func (s *MedicationService) DeleteMedication(ctx context.Context, req *v1.IDRequest) (*v1.MedicationReply, error) {
	m, err := s.uc.Delete(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toMedicationReply(m), nil
}

func toMedicationsReply(ms []*biz.Medication) *v1.ListMedicationsReply {
	reply := &v1.ListMedicationsReply{Medications: make([]*v1.MedicationReply, 0, len(ms))}
	for _, m := range ms {
		reply.Medications = append(reply.Medications, toMedicationReply(m))
	}
	return reply
}
