package session

import "time"

// Clock supplies the current time. The log parser uses it to close an
// open trailing session at read time; tests inject a fixed clock to make
// open-session results deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
