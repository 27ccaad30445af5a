package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
)

// fieldValue extracts a comparable value for a predicate or sort field.
type fieldValue func(spec specification.Field) any

func expenseFieldValue(e domain.Expense) fieldValue {
	return func(f specification.Field) any {
		switch f {
		case specification.FieldID:
			return e.ExpenseID
		case specification.FieldUserCode:
			return e.UserCode
		case specification.FieldCategory:
			return string(e.Category)
		case specification.FieldStartDate:
			return e.StartDate
		case specification.FieldTotalValue:
			return e.Payment.TotalValue
		default:
			return nil
		}
	}
}

func revenueFieldValue(r domain.Revenue) fieldValue {
	return func(f specification.Field) any {
		switch f {
		case specification.FieldID:
			return r.RevenueID
		case specification.FieldUserCode:
			return r.UserCode
		case specification.FieldType:
			return string(r.Type)
		case specification.FieldStartDate:
			return r.StartDate
		case specification.FieldAmount:
			return r.Amount
		default:
			return nil
		}
	}
}

// matches evaluates every predicate of the specification against one record.
// The period predicate is delegated to the domain rule so this backend and
// the SQL translation cannot drift apart in meaning.
func matches(spec specification.Specification, fv fieldValue, startDate time.Time, endDate *time.Time, rec domain.Recurrence) bool {
	for _, p := range spec.Predicates() {
		if p.ActiveIn != nil {
			if !domain.ActiveInWindow(startDate, endDate, rec, *p.ActiveIn) {
				return false
			}
			continue
		}
		if !compare(p.Op, fv(p.Field), normalizeValue(p.Value)) {
			return false
		}
	}
	return true
}

// normalizeValue widens predicate values so that domain enum types compare
// equal to the string field values the extractors return.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case domain.ExpenseCategory:
		return string(t)
	case domain.RevenueType:
		return string(t)
	case domain.PaymentType:
		return string(t)
	default:
		return v
	}
}

func compare(op specification.Operator, a, b any) bool {
	c, ok := order(a, b)
	if !ok {
		return false
	}
	switch op {
	case specification.OpEqual:
		return c == 0
	case specification.OpLessOrEqual:
		return c <= 0
	case specification.OpGreaterOrEqual:
		return c >= 0
	default:
		return false
	}
}

// order returns -1, 0 or 1 for comparable value pairs of the same kind.
func order(a, b any) (int, bool) {
	switch av := a.(type) {
	case int:
		bv, ok := b.(int)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case av.Before(bv):
			return -1, true
		case av.After(bv):
			return 1, true
		default:
			return 0, true
		}
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		if !ok {
			return 0, false
		}
		return av.Cmp(bv), true
	default:
		return 0, false
	}
}

// sortByKeys applies the specification's ordering keys, primary first, using
// a stable sort so equal records keep their relative order.
func sortByKeys[T any](items []T, keys []specification.SortField, fv func(T) fieldValue) {
	if len(keys) == 0 {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, k := range keys {
			c, ok := order(fv(items[i])(k.Field), fv(items[j])(k.Field))
			if !ok || c == 0 {
				continue
			}
			if k.Direction == specification.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}
