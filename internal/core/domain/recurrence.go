package domain

// RecurrencePeriodicity indicates how often a recurring record repeats.
type RecurrencePeriodicity string

const (
	Daily   RecurrencePeriodicity = "DAILY"
	Weekly  RecurrencePeriodicity = "WEEKLY"
	Monthly RecurrencePeriodicity = "MONTHLY"
	Yearly  RecurrencePeriodicity = "YEARLY"
)

// Recurrence describes whether a financial record repeats, at what
// periodicity, and with an optional occurrence cap. It is embedded in
// Expense and Revenue as a value object.
type Recurrence struct {
	IsRecurring bool                  `json:"isRecurring"`
	Periodicity RecurrencePeriodicity `json:"periodicity,omitempty"`
	// MaxOccurrences caps how many times the record repeats. Nil means
	// indefinite. Must be unset for non-recurring records.
	MaxOccurrences *int `json:"maxOccurrences,omitempty"`
}

// Validate checks the recurrence invariants and returns the violated-rule
// messages, empty when the value object is consistent.
func (r Recurrence) Validate() []string {
	var errs []string
	if r.IsRecurring {
		if r.MaxOccurrences != nil && *r.MaxOccurrences <= 0 {
			errs = append(errs, "maximum number of occurrences must be greater than zero")
		}
	} else {
		if r.MaxOccurrences != nil {
			errs = append(errs, "non-recurring records must not have a maximum number of occurrences")
		}
	}
	return errs
}
