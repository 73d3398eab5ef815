package medication

import (
	"context"

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

const medCols = `id, user_id, medication_name, dosage, frequency, start_date,
	end_date, status, notes, created_at, updated_at`

func (r *repoPG) scanMedication(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.UserID, &m.MedicationName, &m.Dosage, &m.Frequency,
		&m.StartDate, &m.EndDate, &m.Status, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medications (id, user_id, medication_name, dosage, frequency,
			start_date, end_date, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		m.ID, m.UserID, m.MedicationName, m.Dosage, m.Frequency,
		m.StartDate, m.EndDate, m.Status, m.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, userID string, id uuid.UUID) (*Medication, error) {
	return r.scanMedication(r.conn(ctx).QueryRow(ctx,
		`SELECT `+medCols+` FROM medications WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repoPG) Update(ctx context.Context, m *Medication) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE medications SET medication_name=$3, dosage=$4, frequency=$5,
			start_date=$6, end_date=$7, status=$8, notes=$9, updated_at=NOW()
		WHERE id = $1 AND user_id = $2`,
		m.ID, m.UserID, m.MedicationName, m.Dosage, m.Frequency,
		m.StartDate, m.EndDate, m.Status, m.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM medications WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *repoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Medication, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM medications WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+medCols+` FROM medications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Medication
	for rows.Next() {
		m, err := r.scanMedication(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListActiveNames(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT medication_name FROM medications WHERE user_id = $1 AND status = $2 ORDER BY created_at`,
		userID, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
