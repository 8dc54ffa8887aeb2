package v1

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationMedicationCreateMedication    = "/medtrack.v1.Medication/CreateMedication"
	OperationMedicationListMedications     = "/medtrack.v1.Medication/ListMedications"
	OperationMedicationListUserMedications = "/medtrack.v1.Medication/ListUserMedications"
	OperationMedicationGetMedication       = "/medtrack.v1.Medication/GetMedication"
	OperationMedicationUpdateMedication    = "/medtrack.v1.Medication/UpdateMedication"
	OperationMedicationDeleteMedication    = "/medtrack.v1.Medication/DeleteMedication"
)

type CreateMedicationRequest struct {
	Name        string `json:"name" validate:"required"`
	FunctionMed string `json:"functionMed"`
	Dosage      string `json:"dosage" validate:"required"`
}

func (r *CreateMedicationRequest) Validate() error { return check(r) }

type ListMedicationsRequest struct{}

type UpdateMedicationRequest struct {
	ID          int64  `json:"id" validate:"gt=0"`
	Name        string `json:"name"`
	FunctionMed string `json:"functionMed"`
	Dosage      string `json:"dosage"`
}

func (r *UpdateMedicationRequest) Validate() error { return check(r) }

type MedicationReply struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	FunctionMed   string               `json:"functionMed"`
	Dosage        string               `json:"dosage"`
	Status        bool                 `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	Prescriptions []*PrescriptionReply `json:"prescriptions,omitempty"`
}

type ListMedicationsReply struct {
	Medications []*MedicationReply `json:"medications"`
}

type MedicationHTTPServer interface {
	CreateMedication(context.Context, *CreateMedicationRequest) (*MedicationReply, error)
	ListMedications(context.Context, *ListMedicationsRequest) (*ListMedicationsReply, error)
	ListUserMedications(context.Context, *IDRequest) (*ListMedicationsReply, error)
	GetMedication(context.Context, *IDRequest) (*MedicationReply, error)
	UpdateMedication(context.Context, *UpdateMedicationRequest) (*MedicationReply, error)
	DeleteMedication(context.Context, *IDRequest) (*MedicationReply, error)
}

func RegisterMedicationHTTPServer(s *http.Server, srv MedicationHTTPServer) {
	r := s.Route("/")
	r.POST("/medication", handler(OperationMedicationCreateMedication, statusCreated, bindBody, srv.CreateMedication))
	r.GET("/medications", handler(OperationMedicationListMedications, statusOK, bindNone, srv.ListMedications))
	r.GET("/medications-user/{id}", handler(OperationMedicationListUserMedications, statusOK, bindVars, srv.ListUserMedications))
	r.GET("/medication/{id}", handler(OperationMedicationGetMedication, statusOK, bindVars, srv.GetMedication))
	r.PUT("/medication/{id}", handler(OperationMedicationUpdateMedication, statusOK, bindBodyAndVars, srv.UpdateMedication))
	r.DELETE("/medication/{id}", handler(OperationMedicationDeleteMedication, statusOK, bindVars, srv.DeleteMedication))
}
