package prescription

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ashray02/prescription-wizardry/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const prescriptionCols = `id, user_id, doctor_name, prescription_date, image_blob_id, extracted_text, extracted_medications, analyzed, created_at`

func scanPrescription(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(&p.ID, &p.UserID, &p.DoctorName, &p.PrescriptionDate,
		&p.ImageBlobID, &p.ExtractedText, &p.ExtractedMedications, &p.Analyzed, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO prescriptions (id, user_id, doctor_name, prescription_date, image_blob_id, extracted_text, analyzed)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.UserID, p.DoctorName, p.PrescriptionDate, p.ImageBlobID, p.ExtractedText, p.Analyzed)
	return err
}

func (r *repoPG) SaveExtraction(ctx context.Context, userID string, id uuid.UUID, medications []string) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE prescriptions SET extracted_medications = $3
		WHERE id = $1 AND user_id = $2`, id, userID, medications)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, userID string, id uuid.UUID) (*Prescription, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions WHERE id = $1 AND user_id = $2`, id, userID)
	return scanPrescription(row)
}

func (r *repoPG) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM prescriptions WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *repoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Prescription, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM prescriptions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Prescription
	for rows.Next() {
		var p Prescription
		if err := rows.Scan(&p.ID, &p.UserID, &p.DoctorName, &p.PrescriptionDate,
			&p.ImageBlobID, &p.ExtractedText, &p.ExtractedMedications, &p.Analyzed, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &p)
	}
	return items, total, rows.Err()
}

func (r *repoPG) MarkAnalyzed(ctx context.Context, userID string, id uuid.UUID, extractedText string) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE prescriptions SET extracted_text = $3, analyzed = true
		WHERE id = $1 AND user_id = $2`, id, userID, extractedText)
	return err
}
