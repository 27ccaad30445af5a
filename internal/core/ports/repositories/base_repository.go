package repositories

import (
	"context"

	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
)

// Creatable defines write operations for a single entity kind. Inside an
// open unit-of-work transaction the write is staged and only flushed on
// commit.
type Creatable[T any] interface {
	// Create stages or persists a new entity and returns it with identity
	// and audit fields populated.
	Create(ctx context.Context, entity T) (T, error)
}

// Queryable defines specification-driven read operations for a single entity
// kind. The backend translates the specification; callers never see the
// storage engine.
type Queryable[T any] interface {
	// ListBySpecification returns all entities matching the specification.
	ListBySpecification(ctx context.Context, spec specification.Specification) ([]T, error)

	// GetSingleBySpecification returns the first entity matching the
	// specification, or apperrors.ErrNotFound.
	GetSingleBySpecification(ctx context.Context, spec specification.Specification) (*T, error)
}

// Repository combines the create and query capabilities.
type Repository[T any] interface {
	Creatable[T]
	Queryable[T]
}
