package service

import (
	"context"

	v1 "github.com/sober-studio/medtrack/api/medtrack/v1"
	"github.com/sober-studio/medtrack/internal/biz"
)

var _ v1.HistoryHTTPServer = (*HistoryService)(nil)

type HistoryService struct {
	uc *biz.HistoryUseCase
}

func NewHistoryService(uc *biz.HistoryUseCase) *HistoryService {
	return &HistoryService{uc: uc}
}

func (s *HistoryService) CreateHistory(ctx context.Context, req *v1.CreateHistoryRequest) (*v1.HistoryReply, error) {
	h, err := s.uc.Create(ctx, &biz.History{
		PrescriptionID: req.PrescriptionID,
		CurrentDate:    parseDate(req.CurrentDate),
		Status:         req.Status,
	})
	if err != nil {
		return nil, err
	}
	return toHistoryReply(h), nil
}

func (s *HistoryService) ListHistories(ctx context.Context, _ *v1.ListHistoriesRequest) (*v1.ListHistoriesReply, error) {
	hs, err := s.uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toHistoriesReply(hs), nil
}

func (s *HistoryService) ListUserHistories(ctx context.Context, req *v1.IDRequest) (*v1.ListHistoriesReply, error) {
	hs, err := s.uc.ListByUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toHistoriesReply(hs), nil
}

func (s *HistoryService) GetHistory(ctx context.Context, req *v1.IDRequest) (*v1.HistoryReply, error) {
	h, err := s.uc.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toHistoryReply(h), nil
}

func (s *HistoryService) UpdateHistory(ctx context.Context, req *v1.UpdateHistoryRequest) (*v1.HistoryReply, error) {
	h, err := s.uc.Update(ctx, &biz.History{
		ID:          req.ID,
		CurrentDate: parseDate(req.CurrentDate),
		Status:      req.Status,
	})
	if err != nil {
		return nil, err
	}
	return toHistoryReply(h), nil
}

func (s *HistoryService) DeleteHistory(ctx context.Context, req *v1.IDRequest) (*v1.HistoryReply, error) {
	h, err := s.uc.Delete(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toHistoryReply(h), nil
}

func toHistoriesReply(hs []*biz.History) *v1.ListHistoriesReply {
	reply := &v1.ListHistoriesReply{Histories: make([]*v1.HistoryReply, 0, len(hs))}
	for _, h := range hs {
		reply.Histories = append(reply.Histories, toHistoryReply(h))
	}
	return reply
}
