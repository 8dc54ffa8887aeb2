package service

import (
	"context"

	v1 "github.com/sober-studio/medtrack/api/medtrack/v1"
	"github.com/sober-studio/medtrack/internal/biz"
)

var _ v1.PrescriptionHTTPServer = (*PrescriptionService)(nil)

type PrescriptionService struct {
	uc *biz.PrescriptionUseCase
}

func NewPrescriptionService(uc *biz.PrescriptionUseCase) *PrescriptionService {
	return &PrescriptionService{uc: uc}
}

func (s *PrescriptionService) CreatePrescription(ctx context.Context, req *v1.CreatePrescriptionRequest) (*v1.PrescriptionReply, error) {
	p, err := s.uc.Create(ctx, &biz.Prescription{
		UserID:       req.UserID,
		MedicationID: req.MedicationID,
		Observation:  req.Observation,
		Frequency:    req.Frequency,
		StartDate:    parseDate(req.StartDate),
		EndDate:      parseDate(req.EndDate),
	})
	if err != nil {
		return nil, err
	}
	return toPrescriptionReply(p), nil
}

func (s *PrescriptionService) ListPrescriptions(ctx context.Context, _ *v1.ListPrescriptionsRequest) (*v1.ListPrescriptionsReply, error) {
	ps, err := s.uc.List(ctx)
	if err != nil {
		return nil, err
	}
	reply := &v1.ListPrescriptionsReply{Prescriptions: make([]*v1.PrescriptionReply, 0, len(ps))}
	for _, p := range ps {
		reply.Prescriptions = append(reply.Prescriptions, toPrescriptionReply(p))
	}
	return reply, nil
}

func (s *PrescriptionService) GetPrescription(ctx context.Context, req *v1.IDRequest) (*v1.PrescriptionReply, error) {
	p, err := s.uc.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toPrescriptionReply(p), nil
}

func (s *PrescriptionService) UpdatePrescription(ctx context.Context, req *v1.UpdatePrescriptionRequest) (*v1.PrescriptionReply, error) {
	p, err := s.uc.Update(ctx, &biz.Prescription{
		ID:           req.ID,
		UserID:       req.UserID,
		MedicationID: req.MedicationID,
		Observation:  req.Observation,
		Frequency:    req.Frequency,
		StartDate:    parseDate(req.StartDate),
		EndDate:      parseDate(req.EndDate),
	})
	if err != nil {
		return nil, err
	}
	return toPrescriptionReply(p), nil
}

func (s *PrescriptionService) DeletePrescription(ctx context.Context, req *v1.IDRequest) (*v1.PrescriptionReply, error) {
	p, err := s.uc.Delete(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toPrescriptionReply(p), nil
}
