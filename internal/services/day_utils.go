package services

import "time"

// DateAtLocation truncates an instant to local midnight. Day-equality checks
// throughout the engine compare these truncated dates, never rolling
// 24-hour windows.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format("2006-01-02")
}

func SameLocalDay(left time.Time, right time.Time, location *time.Location) bool {
	return DateAtLocation(left, location).Equal(DateAtLocation(right, location))
}
