package memory

import (
	"context"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
)

// CommandFailureRepository appends failure records to the store. Like the
// pgsql one it is independent of any unit of work, so records survive the
// rollback of the operation that produced them.
type CommandFailureRepository struct {
	store *Store
}

var _ portsrepo.CommandFailureRepository = (*CommandFailureRepository)(nil)

// NewCommandFailureRepository creates the repository over a store.
func NewCommandFailureRepository(store *Store) *CommandFailureRepository {
	return &CommandFailureRepository{store: store}
}

// Save persists the failure record.
func (r *CommandFailureRepository) Save(ctx context.Context, failure domain.CommandFailure) error {
	r.store.appendFailure(failure)
	return nil
}
