package prediction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const predictionCols = `id, visit_id, risk_level, risk_score, recommended_department,
	department_scores, confidence, explainability, created_at`

func (r *repoPG) scanPrediction(row pgx.Row) (*Prediction, error) {
	var p Prediction
	err := row.Scan(&p.ID, &p.VisitID, &p.RiskLevel, &p.RiskScore, &p.RecommendedDepartment,
		&p.DepartmentScores, &p.Confidence, &p.Explainability, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Prediction) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO triage_predictions (id, visit_id, risk_level, risk_score, recommended_department,
			department_scores, confidence, explainability)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.VisitID, p.RiskLevel, p.RiskScore, p.RecommendedDepartment,
		p.DepartmentScores, p.Confidence, p.Explainability)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Prediction, error) {
	return r.scanPrediction(r.pool.QueryRow(ctx, `SELECT `+predictionCols+` FROM triage_predictions WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Prediction, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM triage_predictions`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+predictionCols+` FROM triage_predictions ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

func (r *repoPG) ListByVisit(ctx context.Context, visitID uuid.UUID, limit, offset int) ([]*Prediction, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM triage_predictions WHERE visit_id = $1`, visitID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+predictionCols+` FROM triage_predictions WHERE visit_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, visitID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

func (r *repoPG) collect(rows pgx.Rows, total int) ([]*Prediction, int, error) {
	var items []*Prediction
	for rows.Next() {
		p, err := r.scanPrediction(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}
