package domain

import "fmt"

// AggregationResult maps labels to record counts. Labels keep the order in
// which they first appeared in the input.
type AggregationResult struct {
	key    GroupKey
	labels []string
	counts map[string]int
}

// Aggregate counts records per label of the selected key in a single pass.
// A nil formatter uses DefaultDateFormatter.
func Aggregate(records []Record, key GroupKey, dates *DateFormatter) (*AggregationResult, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroupKey, string(key))
	}
	if dates == nil {
		dates = DefaultDateFormatter()
	}

	res := &AggregationResult{
		key:    key,
		labels: make([]string, 0),
		counts: make(map[string]int),
	}

	for _, r := range records {
		label := labelFor(r, key, dates)
		if _, seen := res.counts[label]; !seen {
			res.labels = append(res.labels, label)
		}
		res.counts[label]++
	}

	return res, nil
}

func labelFor(r Record, key GroupKey, dates *DateFormatter) string {
	switch key {
	case GroupByCategory:
		return r.Category().Label()
	case GroupBySeverity:
		return r.Severity().Label()
	default:
		return dates.DayLabel(r.Timestamp)
	}
}

func (a *AggregationResult) Key() GroupKey {
	return a.key
}

// Labels returns a copy of the ordered labels.
func (a *AggregationResult) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)
	return out
}

// Counts returns the counts in label order.
func (a *AggregationResult) Counts() []int {
	out := make([]int, len(a.labels))
	for i, l := range a.labels {
		out[i] = a.counts[l]
	}
	return out
}

func (a *AggregationResult) Count(label string) int {
	return a.counts[label]
}

func (a *AggregationResult) Len() int {
	return len(a.labels)
}

// Total is the number of aggregated records.
func (a *AggregationResult) Total() int {
	total := 0
	for _, c := range a.counts {
		total += c
	}
	return total
}
