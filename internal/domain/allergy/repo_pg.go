package allergy

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

const allergyCols = `id, user_id, allergen, severity, reaction, created_at`

func (r *repoPG) Create(ctx context.Context, a *Allergy) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO allergies (id, user_id, allergen, severity, reaction)
		VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.UserID, a.Allergen, a.Severity, a.Reaction)
	return err
}

func (r *repoPG) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM allergies WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *repoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Allergy, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM allergies WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+allergyCols+` FROM allergies WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Allergy
	for rows.Next() {
		var a Allergy
		if err := rows.Scan(&a.ID, &a.UserID, &a.Allergen, &a.Severity, &a.Reaction, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &a)
	}
	return items, total, rows.Err()
}
