package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Patient Repository ===========

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository { return &patientRepoPG{pool: pool} }

const patientCols = `id, age, gender, created_at`

func (r *patientRepoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Age, &p.Gender, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (id, age, gender) VALUES ($1,$2,$3)`,
		p.ID, p.Age, p.Gender)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return r.scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *patientRepoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

// =========== Visit Repository ===========

type visitRepoPG struct{ pool *pgxpool.Pool }

func NewVisitRepoPG(pool *pgxpool.Pool) VisitRepository { return &visitRepoPG{pool: pool} }

const visitCols = `id, patient_id, chief_complaint, created_at`

func (r *visitRepoPG) scanVisit(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(&v.ID, &v.PatientID, &v.ChiefComplaint, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &v, err
}

func (r *visitRepoPG) Create(ctx context.Context, v *Visit) error {
	v.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient_visits (id, patient_id, chief_complaint) VALUES ($1,$2,$3)`,
		v.ID, v.PatientID, v.ChiefComplaint)
	return err
}

func (r *visitRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return r.scanVisit(r.pool.QueryRow(ctx, `SELECT `+visitCols+` FROM patient_visits WHERE id = $1`, id))
}

func (r *visitRepoPG) List(ctx context.Context, limit, offset int) ([]*Visit, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient_visits`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+visitCols+` FROM patient_visits ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collectVisits(rows, total)
}

func (r *visitRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Visit, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient_visits WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+visitCols+` FROM patient_visits WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collectVisits(rows, total)
}

func (r *visitRepoPG) collectVisits(rows pgx.Rows, total int) ([]*Visit, int, error) {
	var items []*Visit
	for rows.Next() {
		v, err := r.scanVisit(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, v)
	}
	return items, total, nil
}

func (r *visitRepoPG) SetVitals(ctx context.Context, v *VisitVitals) error {
	v.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO visit_vitals (id, visit_id, bp_systolic, bp_diastolic, heart_rate, temperature)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (visit_id) DO UPDATE SET
			bp_systolic=EXCLUDED.bp_systolic, bp_diastolic=EXCLUDED.bp_diastolic,
			heart_rate=EXCLUDED.heart_rate, temperature=EXCLUDED.temperature`,
		v.ID, v.VisitID, v.BPSystolic, v.BPDiastolic, v.HeartRate, v.Temperature)
	return err
}

func (r *visitRepoPG) GetVitals(ctx context.Context, visitID uuid.UUID) (*VisitVitals, error) {
	var v VisitVitals
	err := r.pool.QueryRow(ctx, `
		SELECT id, visit_id, bp_systolic, bp_diastolic, heart_rate, temperature
		FROM visit_vitals WHERE visit_id = $1`, visitID).
		Scan(&v.ID, &v.VisitID, &v.BPSystolic, &v.BPDiastolic, &v.HeartRate, &v.Temperature)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &v, err
}

func (r *visitRepoPG) AddSymptom(ctx context.Context, s *VisitSymptom) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO visit_symptoms (id, visit_id, symptom_name, severity_score) VALUES ($1,$2,$3,$4)`,
		s.ID, s.VisitID, s.SymptomName, s.SeverityScore)
	return err
}

func (r *visitRepoPG) GetSymptoms(ctx context.Context, visitID uuid.UUID) ([]*VisitSymptom, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, visit_id, symptom_name, severity_score
		FROM visit_symptoms WHERE visit_id = $1 ORDER BY symptom_name`, visitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*VisitSymptom
	for rows.Next() {
		var s VisitSymptom
		if err := rows.Scan(&s.ID, &s.VisitID, &s.SymptomName, &s.SeverityScore); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, nil
}

// =========== History Repository ===========

type historyRepoPG struct{ pool *pgxpool.Pool }

func NewHistoryRepoPG(pool *pgxpool.Pool) HistoryRepository { return &historyRepoPG{pool: pool} }

func (r *historyRepoPG) Add(ctx context.Context, h *HistoryEntry) error {
	h.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient_history (id, patient_id, condition_name, is_chronic) VALUES ($1,$2,$3,$4)`,
		h.ID, h.PatientID, h.ConditionName, h.IsChronic)
	return err
}

func (r *historyRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*HistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, condition_name, is_chronic
		FROM patient_history WHERE patient_id = $1 ORDER BY condition_name`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*HistoryEntry
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(&h.ID, &h.PatientID, &h.ConditionName, &h.IsChronic); err != nil {
			return nil, err
		}
		items = append(items, &h)
	}
	return items, nil
}
