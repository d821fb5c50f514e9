package reports

import "time"

// NextFridayCap returns the end of the scheduling window: the Friday of
// next week relative to now. Orders due after that date belong to planning,
// not to the floor, and are excluded from the workload report.
func NextFridayCap(now time.Time) time.Time {
	daysUntilFriday := int(time.Friday - now.Weekday())
	if daysUntilFriday < 0 {
		daysUntilFriday += 7
	}
	capDay := now.AddDate(0, 0, daysUntilFriday+7)
	return time.Date(capDay.Year(), capDay.Month(), capDay.Day(), 0, 0, 0, 0, now.Location())
}
