package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sober-studio/medtrack/internal/biz"
)

func TestMedicationRepo_FindAndDeactivate(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicationRepo(newTestData(t), log.DefaultLogger)
	m := mustMedication(t, repo, "Paracetamol")

	found, err := repo.FindMedication(ctx, "Paracetamol", "500mg")
	if err != nil || found.ID != m.ID {
		t.Fatalf("FindMedication = %+v, %v", found, err)
	}
	if _, err := repo.FindMedication(ctx, "Paracetamol", "750mg"); !errors.Is(err, biz.ErrMedicationNotFound) {
		t.Errorf("different dosage err = %v", err)
	}

	if _, err := repo.DeactivateMedication(ctx, m.ID); err != nil {
		t.Fatalf("DeactivateMedication: %v", err)
	}
	if _, err := repo.UpdateActiveMedication(ctx, &biz.Medication{ID: m.ID, Name: "x"}); !errors.Is(err, biz.ErrMedicationNotFound) {
		t.Errorf("update inactive err = %v", err)
	}
	// 停用的药品仍可按 id 查询
	got, err := repo.GetMedicationByID(ctx, m.ID)
	if err != nil || got.Status {
		t.Errorf("GetMedicationByID = %+v, %v", got, err)
	}
	if list, _ := repo.ListActiveMedications(ctx); len(list) != 0 {
		t.Errorf("inactive medication listed")
	}
}

func TestMedicationRepo_ListByUser(t *testing.T) {
	ctx := context.Background()
	d := newTestData(t)
	users := NewUserRepo(d, log.DefaultLogger)
	meds := NewMedicationRepo(d, log.DefaultLogger)
	pres := NewPrescriptionRepo(d, log.DefaultLogger)

	ana := mustUser(t, users, "ana@example.com")
	bia := mustUser(t, users, "bia@example.com")
	para := mustMedication(t, meds, "Paracetamol")
	ibu := mustMedication(t, meds, "Ibuprofeno")
	mustMedication(t, meds, "Dipirona")

	create := func(userID, medID int64) *biz.Prescription {
		p, err := pres.CreatePrescription(ctx, &biz.Prescription{
			UserID: userID, MedicationID: medID, Frequency: "8h",
			StartDate: time.Now(), Status: true,
		})
		if err != nil {
			t.Fatalf("CreatePrescription: %v", err)
		}
		return p
	}
	create(ana.ID, para.ID)
	stopped := create(ana.ID, ibu.ID)
	create(bia.ID, ibu.ID)
	if _, err := pres.DeactivatePrescription(ctx, stopped.ID); err != nil {
		t.Fatalf("DeactivatePrescription: %v", err)
	}

	list, err := meds.ListMedicationsByUser(ctx, ana.ID)
	if err != nil {
		t.Fatalf("ListMedicationsByUser: %v", err)
	}
	if len(list) != 1 || list[0].ID != para.ID {
		t.Fatalf("ana medications = %+v, want only Paracetamol", list)
	}
	if len(list[0].Prescriptions) != 1 || list[0].Prescriptions[0].UserID != ana.ID {
		t.Errorf("preloaded prescriptions = %+v", list[0].Prescriptions)
	}
}
