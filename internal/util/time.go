package util

import (
	"fmt"
	"time"
)

// ResolveLocation turns a timezone name into a *time.Location.
// "" and "Local" mean the system timezone.
func ResolveLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Europe/Madrid, Asia/Shanghai", timezone, err)
	}
	return loc, nil
}
