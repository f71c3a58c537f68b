package postgresql

import "time"

// parseClockPtr turns an optional "HH:MM" string into a time-of-day
// value. Inputs are validated upstream by the request DTOs.
func parseClockPtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("15:04", *s)
	if err != nil {
		return nil
	}
	return &t
}

// normalizePage applies the default page/limit used by all list queries.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
