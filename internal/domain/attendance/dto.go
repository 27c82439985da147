package attendance

// DateRange bounds an attendance query, inclusive on both ends.
type DateRange struct {
	Start string
	End   string
}

// Contains reports whether the canonical date falls inside the range.
// A nil range contains every non-empty date.
func (r *DateRange) Contains(date string) bool {
	if date == "" {
		return false
	}
	if r == nil {
		return true
	}
	return date >= r.Start && date <= r.End
}

// Validate checks that both bounds are set and ordered.
func (r *DateRange) Validate() error {
	if r == nil {
		return nil
	}
	if r.Start == "" || r.End == "" || r.Start > r.End {
		return ErrInvalidDateRange
	}
	return nil
}
