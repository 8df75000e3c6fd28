package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGroupKey = errors.New("unknown group key")

// GroupKey selects the dimension records are counted along.
type GroupKey string

const (
	GroupByCategory   GroupKey = "category"
	GroupBySeverity   GroupKey = "severity"
	GroupByTimeSeries GroupKey = "timeSeries"
)

// GroupKeys lists the supported keys in selector order.
func GroupKeys() []GroupKey {
	return []GroupKey{GroupByCategory, GroupBySeverity, GroupByTimeSeries}
}

func (k GroupKey) Valid() bool {
	switch k {
	case GroupByCategory, GroupBySeverity, GroupByTimeSeries:
		return true
	}
	return false
}

func (k GroupKey) String() string {
	return string(k)
}

// ParseGroupKey accepts the selector values plus a few spellings of the time
// series key ("time", "time_series", any letter case).
func ParseGroupKey(s string) (GroupKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "category":
		return GroupByCategory, nil
	case "severity":
		return GroupBySeverity, nil
	case "timeseries", "time_series", "time-series", "time":
		return GroupByTimeSeries, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGroupKey, s)
}
