package clock

import "time"

// Clock supplies the current time. Services take a Clock instead of calling
// time.Now so tests can pin the timestamp.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
