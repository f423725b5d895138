package domain

import "time"

const (
	// DateTimeFormat renders record instants for report rows.
	DateTimeFormat = "2006/01/02 15:04:05"
	// DateFormat keys rate lookups by trading date.
	DateFormat = "2006/01/02"

	// Instants before 09:00 local time belong to the previous trading day.
	tradingDayCutoffHour = 9
)

// FormatDateTime renders a unix timestamp in the wallet's local time.
func FormatDateTime(unixTS int64, loc *time.Location) string {
	return time.Unix(unixTS, 0).In(loc).Format(DateTimeFormat)
}

// TradingDate returns the accounting date for a unix timestamp. Instants from
// 00:00:00 through 08:59:59 local time roll back to the previous calendar day.
func TradingDate(unixTS int64, loc *time.Location) string {
	t := time.Unix(unixTS, 0).In(loc)
	if t.Hour() < tradingDayCutoffHour {
		t = t.AddDate(0, 0, -1)
	}
	return t.Format(DateFormat)
}
