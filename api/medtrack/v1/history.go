package v1

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationHistoryCreateHistory     = "/medtrack.v1.History/CreateHistory"
	OperationHistoryListHistories     = "/medtrack.v1.History/ListHistories"
	OperationHistoryListUserHistories = "/medtrack.v1.History/ListUserHistories"
	OperationHistoryGetHistory        = "/medtrack.v1.History/GetHistory"
	OperationHistoryUpdateHistory     = "/medtrack.v1.History/UpdateHistory"
	OperationHistoryDeleteHistory     = "/medtrack.v1.History/DeleteHistory"
)

type CreateHistoryRequest struct {
	PrescriptionID int64  `json:"prescriptionId" validate:"gt=0"`
	CurrentDate    string `json:"currentDate" validate:"required,date"`
	Status         bool   `json:"status"`
}

func (r *CreateHistoryRequest) Validate() error { return check(r) }

// ListHistoriesRequest 管理员校验读取 body 中的 email
type ListHistoriesRequest struct {
	Email string `json:"email"`
}

func (r *ListHistoriesRequest) GetEmail() string { return r.Email }

type UpdateHistoryRequest struct {
	ID          int64  `json:"id" validate:"gt=0"`
	CurrentDate string `json:"currentDate" validate:"required,date"`
	Status      bool   `json:"status"`
}

func (r *UpdateHistoryRequest) Validate() error { return check(r) }

type HistoryReply struct {
	ID             int64              `json:"id"`
	PrescriptionID int64              `json:"prescriptionId"`
	CurrentDate    time.Time          `json:"currentDate"`
	Status         bool               `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	Prescription   *PrescriptionReply `json:"prescription,omitempty"`
}

type ListHistoriesReply struct {
	Histories []*HistoryReply `json:"histories"`
}

type HistoryHTTPServer interface {
	CreateHistory(context.Context, *CreateHistoryRequest) (*HistoryReply, error)
	ListHistories(context.Context, *ListHistoriesRequest) (*ListHistoriesReply, error)
	ListUserHistories(context.Context, *IDRequest) (*ListHistoriesReply, error)
	GetHistory(context.Context, *IDRequest) (*HistoryReply, error)
	UpdateHistory(context.Context, *UpdateHistoryRequest) (*HistoryReply, error)
	DeleteHistory(context.Context, *IDRequest) (*HistoryReply, error)
}

func RegisterHistoryHTTPServer(s *http.Server, srv HistoryHTTPServer) {
	r := s.Route("/")
	r.POST("/history", handler(OperationHistoryCreateHistory, statusCreated, bindBody, srv.CreateHistory))
	r.GET("/histories", handler(OperationHistoryListHistories, statusOK, bindBody, srv.ListHistories))
	r.GET("/histories-user/{id}", handler(OperationHistoryListUserHistories, statusOK, bindVars, srv.ListUserHistories))
	r.GET("/history/{id}", handler(OperationHistoryGetHistory, statusOK, bindVars, srv.GetHistory))
	r.PUT("/history/{id}", handler(OperationHistoryUpdateHistory, statusOK, bindBodyAndVars, srv.UpdateHistory))
	r.DELETE("/history/{id}", handler(OperationHistoryDeleteHistory, statusOK, bindVars, srv.DeleteHistory))
}
