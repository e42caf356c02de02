// Package schedule holds the timing rules a screening must satisfy before it is stored:
// business hours, room turnaround and overlap with the other screenings of the room.
package schedule

import (
	"cinema/shared/failure"
	"cinema/shared/timezone"
	"time"
)

const (
	CleaningTime = 15 * time.Minute
	AdsTime      = 10 * time.Minute
	IdleTime     = CleaningTime + AdsTime

	OpeningTime = 8 * time.Hour
	ClosingTime = 23 * time.Hour

	// MaxSpan is the longest a screening can keep a room busy.
	MaxSpan = 500*time.Minute + IdleTime

	MinPrice = 1
)

const (
	FieldStartTime = "start_time"
	FieldPrice     = "price"

	MessageTooEarly     = "Screening cannot start before 8am."
	MessageTooLate      = "Screening cannot start later than 11pm."
	MessageOverlap      = "Screenings should not intersect."
	MessageInvalidPrice = "Ensure this value is greater than or equal to 1."
)

// Interval is the half open range [Start, End) during which a room is occupied.
type Interval struct {
	Start time.Time
	End   time.Time
}

// EndTime is the moment the room is free again after a movie of the given runtime.
func EndTime(start time.Time, runtime time.Duration) time.Time {
	return start.Add(runtime).Add(IdleTime)
}

func NewInterval(start time.Time, runtime time.Duration) Interval {
	return Interval{Start: start, End: EndTime(start, runtime)}
}

// Overlaps reports whether the two intervals share any instant. Touching endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Window bounds the start times of screenings that could overlap i.
func (i Interval) Window() (from, to time.Time) {
	return i.Start.Add(-MaxSpan), i.End
}

// CheckBusinessHours validates the wall clock of start in the application timezone.
// 23:00:00 itself is accepted.
func CheckBusinessHours(start time.Time) error {
	clock := timezone.ClockOf(timezone.ToAppTime(start))

	if clock < OpeningTime {
		return failure.FieldError(failure.KindTooEarly, FieldStartTime, MessageTooEarly)
	}

	if clock > ClosingTime {
		return failure.FieldError(failure.KindTooLate, FieldStartTime, MessageTooLate)
	}

	return nil
}

func CheckPrice(price int) error {
	if price < MinPrice {
		return failure.FieldError(failure.KindInvalidPrice, FieldPrice, MessageInvalidPrice)
	}

	return nil
}

// CheckOverlap rejects candidate when it intersects any of the existing intervals.
func CheckOverlap(candidate Interval, existing []Interval) error {
	for _, other := range existing {
		if candidate.Overlaps(other) {
			return OverlapError()
		}
	}

	return nil
}

func OverlapError() error {
	return failure.FieldError(failure.KindOverlap, FieldStartTime, MessageOverlap)
}

// Validate runs the checks in order: price, business hours, then overlap.
func Validate(candidate Interval, price int, existing []Interval) error {
	if err := CheckPrice(price); err != nil {
		return err
	}

	if err := CheckBusinessHours(candidate.Start); err != nil {
		return err
	}

	return CheckOverlap(candidate, existing)
}
