// Package timezone decides which wall clock the calendar runs on.
//
// The zone comes from APP_TIMEZONE and is loaded once when the package is imported.
// Calendar cells are date-granular, so the zone only decides which date is "today",
// which month navigation starts on and the offset written into exported events.
//
//	today := timezone.Today()        // "2024-01-05"
//	loc := timezone.GetLocation()    // *time.Location for ICS DTSTART/DTEND
package timezone
