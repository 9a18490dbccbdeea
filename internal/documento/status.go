package documento

import "time"

type Status string

const (
	StatusValid        Status = "valid"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// AlertWindowDays is the look-ahead window before expiry that flags a
// document as expiring soon.
const AlertWindowDays = 30

// AlertStatuses are the statuses surfaced by the alerts listing.
func AlertStatuses() []Status {
	return []Status{StatusExpiringSoon, StatusExpired}
}

// DeriveStatus computes the lifecycle status of a document from its expiry
// date and an injected "today". Comparison is day-granular: a document
// expiring today is expiring_soon, not expired.
func DeriveStatus(dataValidade *time.Time, today time.Time) Status {
	if dataValidade == nil {
		return StatusValid
	}

	expiry := truncateToDay(*dataValidade)
	day := truncateToDay(today)

	if expiry.Before(day) {
		return StatusExpired
	}
	if !expiry.After(day.AddDate(0, 0, AlertWindowDays)) {
		return StatusExpiringSoon
	}
	return StatusValid
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
