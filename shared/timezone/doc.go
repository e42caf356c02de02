// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Parsing times in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
//  4. Wall clock and calendar day:
//     clock := timezone.ClockOf(timezone.ToAppTime(start)) // offset since local midnight
//     day := timezone.StartOfDay(start)                     // local midnight of start's day
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Europe/Warsaw", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Business hours of screenings are evaluated against this timezone.
package timezone
