package pgsql

import (
	"fmt"
	"strings"

	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
)

// columnMap translates specification fields to the columns of one table.
// Fields outside the map are rejected; the specification language is a fixed,
// small family of predicates, not a general query builder.
type columnMap map[specification.Field]string

var expenseColumns = columnMap{
	specification.FieldID:         "expense_id",
	specification.FieldUserCode:   "user_code",
	specification.FieldCategory:   "category",
	specification.FieldStartDate:  "start_date",
	specification.FieldTotalValue: "total_value",
}

var revenueColumns = columnMap{
	specification.FieldID:        "revenue_id",
	specification.FieldUserCode:  "user_code",
	specification.FieldType:      "type",
	specification.FieldStartDate: "start_date",
	specification.FieldAmount:    "amount",
}

var sqlOperators = map[specification.Operator]string{
	specification.OpEqual:          "=",
	specification.OpLessOrEqual:    "<=",
	specification.OpGreaterOrEqual: ">=",
}

// buildQuery renders a specification into a SELECT over one table. The
// recurrence-aware period predicate becomes the interval-overlap clause;
// non-read-only specifications inside a transaction lock the selected rows.
func buildQuery(table, selectCols string, cols columnMap, spec specification.Specification, inTransaction bool) (string, []any, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString("SELECT ")
	sb.WriteString(selectCols)
	sb.WriteString(" FROM ")
	sb.WriteString(table)

	var conditions []string
	for _, p := range spec.Predicates() {
		if p.ActiveIn != nil {
			w := *p.ActiveIn
			first := len(args) + 1
			args = append(args, w.Start, w.End)
			conditions = append(conditions, fmt.Sprintf(
				"((NOT is_recurring AND start_date >= $%d AND start_date <= $%d) OR "+
					"(is_recurring AND start_date <= $%d AND (end_date IS NULL OR end_date >= $%d)))",
				first, first+1, first+1, first))
			continue
		}
		col, ok := cols[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("specification field %q has no column on %s", p.Field, table)
		}
		op, ok := sqlOperators[p.Op]
		if !ok {
			return "", nil, fmt.Errorf("unsupported specification operator %q", p.Op)
		}
		args = append(args, p.Value)
		conditions = append(conditions, fmt.Sprintf("%s %s $%d", col, op, len(args)))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	if sort := spec.Sort(); len(sort) > 0 {
		orders := make([]string, 0, len(sort))
		for _, s := range sort {
			col, ok := cols[s.Field]
			if !ok {
				return "", nil, fmt.Errorf("specification sort field %q has no column on %s", s.Field, table)
			}
			dir := "ASC"
			if s.Direction == specification.Descending {
				dir = "DESC"
			}
			orders = append(orders, col+" "+dir)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(orders, ", "))
	}

	if !spec.ReadOnly() && inTransaction {
		sb.WriteString(" FOR UPDATE")
	}

	return sb.String(), args, nil
}

// hasInclude reports whether the specification asks for the given
// sub-object. Recurrence and payment are flattened onto the row, so includes
// decide which column groups are selected and hydrated.
func hasInclude(spec specification.Specification, inc specification.Include) bool {
	for _, i := range spec.Includes() {
		if i == inc {
			return true
		}
	}
	return false
}
