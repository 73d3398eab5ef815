package history

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

const conditionCols = `id, user_id, condition_name, diagnosis_date, status, notes, created_at`

func (r *repoPG) Create(ctx context.Context, c *Condition) error {
	c.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medical_history (id, user_id, condition_name, diagnosis_date, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		c.ID, c.UserID, c.ConditionName, c.DiagnosisDate, c.Status, c.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM medical_history WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *repoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Condition, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM medical_history WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+conditionCols+` FROM medical_history WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Condition
	for rows.Next() {
		var c Condition
		if err := rows.Scan(&c.ID, &c.UserID, &c.ConditionName, &c.DiagnosisDate, &c.Status, &c.Notes, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &c)
	}
	return items, total, rows.Err()
}
