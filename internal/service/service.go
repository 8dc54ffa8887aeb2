package service

import (
	"time"

	"github.com/google/wire"
	v1 "github.com/sober-studio/medtrack/api/medtrack/v1"
	"github.com/sober-studio/medtrack/internal/biz"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(
	NewPassportService,
	NewUserService,
	NewMedicationService,
	NewPrescriptionService,
	NewHistoryService,
)

// 请求参数已由 Validate 校验，这里解析失败按零值处理
func parseDate(s string) time.Time {
	t, _ := v1.ParseDate(s)
	return t
}

func toUserReply(u *biz.User) *v1.UserReply {
	return &v1.UserReply{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		BirthDate: u.BirthDate,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toMedicationReply(m *biz.Medication) *v1.MedicationReply {
	if m == nil {
		return nil
	}
	reply := &v1.MedicationReply{
		ID:          m.ID,
		Name:        m.Name,
		FunctionMed: m.FunctionMed,
		Dosage:      m.Dosage,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, p := range m.Prescriptions {
		reply.Prescriptions = append(reply.Prescriptions, toPrescriptionReply(p))
	}
	return reply
}

func toPrescriptionReply(p *biz.Prescription) *v1.PrescriptionReply {
	if p == nil {
		return nil
	}
	reply := &v1.PrescriptionReply{
		ID:           p.ID,
		UserID:       p.UserID,
		MedicationID: p.MedicationID,
		Observation:  p.Observation,
		Frequency:    p.Frequency,
		StartDate:    p.StartDate,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Medication:   toMedicationReply(p.Medication),
	}
	if !p.EndDate.IsZero() {
		end := p.EndDate
		reply.EndDate = &end
	}
	return reply
}

func toHistoryReply(h *biz.History) *v1.HistoryReply {
	return &v1.HistoryReply{
		ID:             h.ID,
		PrescriptionID: h.PrescriptionID,
		CurrentDate:    h.CurrentDate,
		Status:         h.Status,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
		Prescription:   toPrescriptionReply(h.Prescription),
	}
}
