package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expensescontrol/expenses_control_app/internal/apperrors"
	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
	"github.com/expensescontrol/expenses_control_app/internal/utils/mapping"
)

// maxRequestContentLen matches the request_content column width.
const maxRequestContentLen = 4000

// PgxCommandFailureRepository writes forensic failure records straight to
// the pool. It deliberately never participates in a unit of work: a captured
// failure must survive the rollback of the transaction that produced it.
type PgxCommandFailureRepository struct {
	db querier
}

var _ portsrepo.CommandFailureRepository = (*PgxCommandFailureRepository)(nil)

// NewPgxCommandFailureRepository creates the repository over a pgx pool.
func NewPgxCommandFailureRepository(pool *pgxpool.Pool) *PgxCommandFailureRepository {
	return &PgxCommandFailureRepository{db: pool}
}

const insertCommandFailureSQL = `
	INSERT INTO command_failures (id, command_name, error_details, timestamp, request_content, trace_id)
	VALUES ($1, $2, $3, $4, $5, $6);
`

// Save persists one immutable failure record.
func (r *PgxCommandFailureRepository) Save(ctx context.Context, failure domain.CommandFailure) error {
	m := mapping.ToModelCommandFailure(failure)
	if m.RequestContent != nil && len(*m.RequestContent) > maxRequestContentLen {
		truncated := (*m.RequestContent)[:maxRequestContentLen]
		m.RequestContent = &truncated
	}
	_, err := r.db.Exec(ctx, insertCommandFailureSQL,
		m.ID, m.CommandName, m.ErrorDetails, m.Timestamp, m.RequestContent, m.TraceID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert command failure "+m.ID, err)
	}
	return nil
}
