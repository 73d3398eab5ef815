package interaction

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

const interactionCols = `id, user_id, medication_1, medication_2, risk_level, risk_percentage, description, severity, created_at`

func (r *repoPG) Insert(ctx context.Context, in *Interaction) error {
	in.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO drug_interactions (id, user_id, medication_1, medication_2, risk_level, risk_percentage, description, severity)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		in.ID, in.UserID, in.Medication1, in.Medication2,
		in.RiskLevel, in.RiskPercentage, in.Description, in.Severity)
	return err
}

func (r *repoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Interaction, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM drug_interactions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+interactionCols+` FROM drug_interactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Interaction
	for rows.Next() {
		var in Interaction
		if err := rows.Scan(&in.ID, &in.UserID, &in.Medication1, &in.Medication2,
			&in.RiskLevel, &in.RiskPercentage, &in.Description, &in.Severity, &in.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &in)
	}
	return items, total, rows.Err()
}
