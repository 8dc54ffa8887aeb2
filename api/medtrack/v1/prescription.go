package v1

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationPrescriptionCreatePrescription = "/medtrack.v1.Prescription/CreatePrescription"
	OperationPrescriptionListPrescriptions  = "/medtrack.v1.Prescription/ListPrescriptions"
	OperationPrescriptionGetPrescription    = "/medtrack.v1.Prescription/GetPrescription"
	OperationPrescriptionUpdatePrescription = "/medtrack.v1.Prescription/UpdatePrescription"
	OperationPrescriptionDeletePrescription = "/medtrack.v1.Prescription/DeletePrescription"
)

type CreatePrescriptionRequest struct {
	UserID       int64  `json:"userId" validate:"gt=0"`
	MedicationID int64  `json:"medicationId" validate:"gt=0"`
	Observation  string `json:"observation"`
	Frequency    string `json:"frequency" validate:"required"`
	StartDate    string `json:"startDate" validate:"required,date"`
	EndDate      string `json:"endDate" validate:"omitempty,date"`
}

func (r *CreatePrescriptionRequest) Validate() error { return check(r) }

type ListPrescriptionsRequest struct{}

type UpdatePrescriptionRequest struct {
	ID           int64  `json:"id" validate:"gt=0"`
	UserID       int64  `json:"userId"`
	MedicationID int64  `json:"medicationId"`
	Observation  string `json:"observation"`
	Frequency    string `json:"frequency"`
	StartDate    string `json:"startDate" validate:"omitempty,date"`
	EndDate      string `json:"endDate" validate:"omitempty,date"`
}

func (r *UpdatePrescriptionRequest) Validate() error { return check(r) }

type PrescriptionReply struct {
	ID           int64            `json:"id"`
	UserID       int64            `json:"userId"`
	MedicationID int64            `json:"medicationId"`
	Observation  string           `json:"observation"`
	Frequency    string           `json:"frequency"`
	StartDate    time.Time        `json:"startDate"`
	EndDate      *time.Time       `json:"endDate,omitempty"`
	Status       bool             `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Medication   *MedicationReply `json:"medication,omitempty"`
}

type ListPrescriptionsReply struct {
	Prescriptions []*PrescriptionReply `json:"prescriptions"`
}

type PrescriptionHTTPServer interface {
	CreatePrescription(context.Context, *CreatePrescriptionRequest) (*PrescriptionReply, error)
	ListPrescriptions(context.Context, *ListPrescriptionsRequest) (*ListPrescriptionsReply, error)
	GetPrescription(context.Context, *IDRequest) (*PrescriptionReply, error)
	UpdatePrescription(context.Context, *UpdatePrescriptionRequest) (*PrescriptionReply, error)
	DeletePrescription(context.Context, *IDRequest) (*PrescriptionReply, error)
}

func RegisterPrescriptionHTTPServer(s *http.Server, srv PrescriptionHTTPServer) {
	r := s.Route("/")
	r.POST("/prescription", handler(OperationPrescriptionCreatePrescription, statusCreated, bindBody, srv.CreatePrescription))
	r.GET("/prescriptions", handler(OperationPrescriptionListPrescriptions, statusOK, bindNone, srv.ListPrescriptions))
	r.GET("/prescription/{id}", handler(OperationPrescriptionGetPrescription, statusOK, bindVars, srv.GetPrescription))
	r.PUT("/prescription/{id}", handler(OperationPrescriptionUpdatePrescription, statusOK, bindBodyAndVars, srv.UpdatePrescription))
	r.DELETE("/prescription/{id}", handler(OperationPrescriptionDeletePrescription, statusOK, bindVars, srv.DeletePrescription))
}
