package patient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repositories --

type mockPatientRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, len(result), nil
}

type mockVisitRepo struct {
	visits   map[uuid.UUID]*Visit
	vitals   map[uuid.UUID]*VisitVitals
	symptoms map[uuid.UUID][]*VisitSymptom
}

func newMockVisitRepo() *mockVisitRepo {
	return &mockVisitRepo{
		visits:   make(map[uuid.UUID]*Visit),
		vitals:   make(map[uuid.UUID]*VisitVitals),
		symptoms: make(map[uuid.UUID][]*VisitSymptom),
	}
}

func (m *mockVisitRepo) Create(_ context.Context, v *Visit) error {
	v.ID = uuid.New()
	v.CreatedAt = time.Now()
	m.visits[v.ID] = v
	return nil
}

func (m *mockVisitRepo) GetByID(_ context.Context, id uuid.UUID) (*Visit, error) {
	v, ok := m.visits[id]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *mockVisitRepo) List(_ context.Context, limit, offset int) ([]*Visit, int, error) {
	var result []*Visit
	for _, v := range m.visits {
		result = append(result, v)
	}
	return result, len(result), nil
}

func (m *mockVisitRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Visit, int, error) {
	var result []*Visit
	for _, v := range m.visits {
		if v.PatientID == patientID {
			result = append(result, v)
		}
	}
	return result, len(result), nil
}

func (m *mockVisitRepo) SetVitals(_ context.Context, v *VisitVitals) error {
	v.ID = uuid.New()
	m.vitals[v.VisitID] = v
	return nil
}

func (m *mockVisitRepo) GetVitals(_ context.Context, visitID uuid.UUID) (*VisitVitals, error) {
	v, ok := m.vitals[visitID]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *mockVisitRepo) AddSymptom(_ context.Context, s *VisitSymptom) error {
	s.ID = uuid.New()
	m.symptoms[s.VisitID] = append(m.symptoms[s.VisitID], s)
	return nil
}

func (m *mockVisitRepo) GetSymptoms(_ context.Context, visitID uuid.UUID) ([]*VisitSymptom, error) {
	return m.symptoms[visitID], nil
}

type mockHistoryRepo struct {
	entries map[uuid.UUID][]*HistoryEntry
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{entries: make(map[uuid.UUID][]*HistoryEntry)}
}

func (m *mockHistoryRepo) Add(_ context.Context, h *HistoryEntry) error {
	h.ID = uuid.New()
	m.entries[h.PatientID] = append(m.entries[h.PatientID], h)
	return nil
}

func (m *mockHistoryRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*HistoryEntry, error) {
	return m.entries[patientID], nil
}

func newTestService() (*Service, *mockPatientRepo, *mockVisitRepo, *mockHistoryRepo) {
	patients := newMockPatientRepo()
	visits := newMockVisitRepo()
	history := newMockHistoryRepo()
	return NewService(patients, visits, history), patients, visits, history
}

func ptrInt(i int) *int { return &i }

// -- Tests --

func TestCreatePatientNegativeAge(t *testing.T) {
	svc, _, _, _ := newTestService()
	err := svc.CreatePatient(context.Background(), &Patient{Age: ptrInt(-1)})
	if err == nil {
		t.Fatal("expected error for negative age")
	}
}

func TestCreateVisitRequiresPatient(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateVisit(context.Background(), &VisitInput{ChiefComplaint: "headache"})
	if err == nil {
		t.Fatal("expected error for missing patient_id")
	}

	_, err = svc.CreateVisit(context.Background(), &VisitInput{
		PatientID:      uuid.New(),
		ChiefComplaint: "headache",
	})
	if err == nil {
		t.Fatal("expected error for unknown patient")
	}
}

func TestCreateVisitPersistsDetails(t *testing.T) {
	svc, _, visits, history := newTestService()
	ctx := context.Background()

	p := &Patient{Age: ptrInt(55)}
	if err := svc.CreatePatient(ctx, p); err != nil {
		t.Fatalf("CreatePatient failed: %v", err)
	}

	v, err := svc.CreateVisit(ctx, &VisitInput{
		PatientID:      p.ID,
		ChiefComplaint: "chest discomfort",
		Vitals:         &VisitVitals{BPSystolic: ptrInt(150)},
		Symptoms: []VisitSymptom{
			{SymptomName: "chest pain", SeverityScore: 3},
			{SymptomName: "fatigue", SeverityScore: 2},
		},
		History: []HistoryEntry{{ConditionName: "Hypertension", IsChronic: true}},
	})
	if err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}

	if _, ok := visits.vitals[v.ID]; !ok {
		t.Error("expected vitals row")
	}
	if len(visits.symptoms[v.ID]) != 2 {
		t.Errorf("expected 2 symptom rows, got %d", len(visits.symptoms[v.ID]))
	}
	if len(history.entries[p.ID]) != 1 {
		t.Errorf("expected 1 history entry, got %d", len(history.entries[p.ID]))
	}
}

func TestGetEncounterAssembly(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	p := &Patient{Age: ptrInt(68)}
	if err := svc.CreatePatient(ctx, p); err != nil {
		t.Fatalf("CreatePatient failed: %v", err)
	}
	v, err := svc.CreateVisit(ctx, &VisitInput{
		PatientID:      p.ID,
		ChiefComplaint: "shortness of breath",
		Vitals:         &VisitVitals{HeartRate: ptrInt(105)},
		Symptoms:       []VisitSymptom{{SymptomName: "cough", SeverityScore: 2}},
		History:        []HistoryEntry{{ConditionName: "COPD", IsChronic: true}},
	})
	if err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}

	enc, err := svc.GetEncounter(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetEncounter failed: %v", err)
	}

	if enc.Age == nil || *enc.Age != 68 {
		t.Errorf("expected age 68, got %v", enc.Age)
	}
	if enc.ChiefComplaint != "shortness of breath" {
		t.Errorf("unexpected chief complaint: %s", enc.ChiefComplaint)
	}
	if enc.Vitals == nil || enc.Vitals.HeartRate == nil || *enc.Vitals.HeartRate != 105 {
		t.Errorf("expected heart rate 105, got %+v", enc.Vitals)
	}
	if enc.Vitals.BPSystolic != nil {
		t.Error("expected unmeasured systolic BP to stay nil")
	}
	if len(enc.Symptoms) != 1 || enc.Symptoms[0].Name != "cough" || enc.Symptoms[0].Severity != 2 {
		t.Errorf("unexpected symptoms: %+v", enc.Symptoms)
	}
	if len(enc.MedicalHistory) != 1 || enc.MedicalHistory[0].Name != "COPD" || !enc.MedicalHistory[0].IsChronic {
		t.Errorf("unexpected history: %+v", enc.MedicalHistory)
	}
}

func TestGetEncounterMissingVitals(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	p := &Patient{}
	if err := svc.CreatePatient(ctx, p); err != nil {
		t.Fatalf("CreatePatient failed: %v", err)
	}
	v, err := svc.CreateVisit(ctx, &VisitInput{PatientID: p.ID, ChiefComplaint: "checkup"})
	if err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}

	enc, err := svc.GetEncounter(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetEncounter failed: %v", err)
	}
	if enc.Vitals != nil {
		t.Errorf("expected nil vitals for unmeasured visit, got %+v", enc.Vitals)
	}
	if enc.Age != nil {
		t.Errorf("expected nil age, got %v", enc.Age)
	}
}

func TestGetEncounterUnknownVisit(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.GetEncounter(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for unknown visit")
	}
}
