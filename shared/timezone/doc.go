// Package timezone pins every business timestamp to the application timezone.
//
// The zone comes from APP_TIMEZONE when the package is imported and falls back
// to UTC. Day-scoped queries bound "today" with DayRange:
//
//	start, end := timezone.DayRange(timezone.Now())
package timezone
