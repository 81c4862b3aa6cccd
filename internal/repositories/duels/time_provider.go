package duels

import "time"

// TimeProvider lets tests control the clock used for session expiry
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
