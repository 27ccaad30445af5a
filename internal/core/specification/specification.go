// Package specification describes queries declaratively: filter predicates,
// sort order, related-data includes, and a read-only hint. Specifications do
// not execute anything; a repository backend translates them. They are
// immutable: every refinement returns an extended copy, so shared instances
// are safe across concurrent callers.
package specification

import (
	"time"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
)

// Field names predicates and sort keys can refer to. The set is fixed and
// small on purpose; this is not a general query language.
type Field string

const (
	FieldUserCode   Field = "user_code"
	FieldCategory   Field = "category"
	FieldType       Field = "type"
	FieldStartDate  Field = "start_date"
	FieldTotalValue Field = "total_value"
	FieldAmount     Field = "amount"
	FieldID         Field = "id"
)

// Operator is the comparison applied by an equality/range predicate.
type Operator string

const (
	OpEqual          Operator = "eq"
	OpLessOrEqual    Operator = "lte"
	OpGreaterOrEqual Operator = "gte"
)

// Predicate is a single filter condition. Exactly one of the two forms is
// used: a field comparison, or the recurrence-aware period membership test.
type Predicate struct {
	Field    Field
	Op       Operator
	Value    any
	ActiveIn *domain.ReportingWindow
}

// SortDirection orders a sort key.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortField is one ordering key; specifications carry a primary key and
// optional secondary keys.
type SortField struct {
	Field     Field
	Direction SortDirection
}

// Include names a related sub-object to fetch eagerly.
type Include string

const (
	IncludeRecurrence Include = "recurrence"
	IncludePayment    Include = "payment"
)

// Specification is a serializable query description handed to a repository.
type Specification struct {
	predicates []Predicate
	sort       []SortField
	includes   []Include
	readOnly   bool
}

// New returns an empty read-only specification. Pass readOnly=false when the
// caller intends to mutate the loaded entities inside a transaction.
func New(readOnly bool) Specification {
	return Specification{readOnly: readOnly}
}

// Predicates returns the filter conditions in application order.
func (s Specification) Predicates() []Predicate { return s.predicates }

// Sort returns the ordering keys, primary first.
func (s Specification) Sort() []SortField { return s.sort }

// Includes returns the related sub-objects to fetch eagerly.
func (s Specification) Includes() []Include { return s.includes }

// ReadOnly reports whether the query result may be returned as untracked,
// shared data.
func (s Specification) ReadOnly() bool { return s.readOnly }

// Where returns a copy of the specification with an extra field comparison.
func (s Specification) Where(field Field, op Operator, value any) Specification {
	out := s.clone()
	out.predicates = append(out.predicates, Predicate{Field: field, Op: op, Value: value})
	return out
}

// ActiveInPeriod returns a copy constrained to records active during the
// reporting window, per the recurrence-aware interval membership rule.
func (s Specification) ActiveInPeriod(w domain.ReportingWindow) Specification {
	out := s.clone()
	win := w
	out.predicates = append(out.predicates, Predicate{ActiveIn: &win})
	return out
}

// OrderBy returns a copy with an additional ordering key appended after any
// existing keys.
func (s Specification) OrderBy(field Field, dir SortDirection) Specification {
	out := s.clone()
	out.sort = append(out.sort, SortField{Field: field, Direction: dir})
	return out
}

// Including returns a copy that eagerly fetches the named sub-objects.
func (s Specification) Including(includes ...Include) Specification {
	out := s.clone()
	out.includes = append(out.includes, includes...)
	return out
}

func (s Specification) clone() Specification {
	out := Specification{readOnly: s.readOnly}
	out.predicates = append(out.predicates, s.predicates...)
	out.sort = append(out.sort, s.sort...)
	out.includes = append(out.includes, s.includes...)
	return out
}

// ExpenseByUser lists a user's expenses ordered by category then payment
// total, with payment and recurrence details included.
func ExpenseByUser(userCode int) Specification {
	return New(true).
		Including(IncludePayment, IncludeRecurrence).
		Where(FieldUserCode, OpEqual, userCode).
		OrderBy(FieldCategory, Ascending).
		OrderBy(FieldTotalValue, Ascending)
}

// ExpenseByUserPeriod lists a user's expenses active in the given month/year,
// ordered by start date.
func ExpenseByUserPeriod(userCode int, month time.Month, year int) (Specification, error) {
	w, err := domain.MonthWindow(month, year)
	if err != nil {
		return Specification{}, err
	}
	return New(true).
		Including(IncludePayment, IncludeRecurrence).
		Where(FieldUserCode, OpEqual, userCode).
		ActiveInPeriod(w).
		OrderBy(FieldStartDate, Ascending), nil
}

// ExpenseByID fetches a single expense.
func ExpenseByID(id string) Specification {
	return New(true).
		Including(IncludePayment, IncludeRecurrence).
		Where(FieldID, OpEqual, id)
}

// ExpenseByCategory refines an existing expense specification by category
// without re-deriving its base predicates.
func ExpenseByCategory(spec Specification, category domain.ExpenseCategory) Specification {
	return spec.Where(FieldCategory, OpEqual, category)
}

// RevenueByUser lists a user's revenues ordered by start date, with
// recurrence details included.
func RevenueByUser(userCode int) Specification {
	return New(true).
		Including(IncludeRecurrence).
		Where(FieldUserCode, OpEqual, userCode).
		OrderBy(FieldStartDate, Ascending)
}

// RevenueByUserPeriod lists a user's revenues active in the given month/year,
// ordered by start date.
func RevenueByUserPeriod(userCode int, month time.Month, year int) (Specification, error) {
	w, err := domain.MonthWindow(month, year)
	if err != nil {
		return Specification{}, err
	}
	return New(true).
		Including(IncludeRecurrence).
		Where(FieldUserCode, OpEqual, userCode).
		ActiveInPeriod(w).
		OrderBy(FieldStartDate, Ascending), nil
}

// RevenueByType refines an existing revenue specification by revenue type.
func RevenueByType(spec Specification, t domain.RevenueType) Specification {
	return spec.Where(FieldType, OpEqual, t)
}
