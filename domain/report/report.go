package report

import (
	"fmt"

	"reportkit/internal/errors"
)

// Kind selects how a report accumulates and draws its values
type Kind string

const (
	// Default resolves to Series at setup time
	Default Kind = ""
	// Series accumulates an ordered sequence of samples, drawn as a line
	Series Kind = "series"
	// Counter counts occurrences per discrete key, drawn as bars
	Counter Kind = "counter"
)

func (k Kind) String() string {
	if k == Default {
		return "default"
	}
	return string(k)
}

// Valid reports whether k is one of the drawable kinds
func (k Kind) Valid() bool {
	return k == Series || k == Counter
}

// Bucket is one counter entry
type Bucket struct {
	Key   any `json:"key" msgpack:"key"`
	Count int `json:"count" msgpack:"count"`
}

// Report is a named, typed accumulator. Only the value field matching Kind is populated.
type Report struct {
	Name   string    `json:"name" msgpack:"name"`
	XLabel string    `json:"xlabel" msgpack:"xlabel"`
	Kind   Kind      `json:"kind" msgpack:"kind"`
	Values []float64 `json:"values,omitempty" msgpack:"values,omitempty"`
	Counts []Bucket  `json:"counts,omitempty" msgpack:"counts,omitempty"`

	index map[any]int
}

// New creates an empty report of the given kind
func New(name, xlabel string, kind Kind) (*Report, error) {
	if kind == Default {
		kind = Series
	}
	if !kind.Valid() {
		return nil, errors.UnsupportedKind(kind)
	}
	return &Report{Name: name, XLabel: xlabel, Kind: kind}, nil
}

// Append records one observation
func (r *Report) Append(value any) error {
	switch r.Kind {
	case Series:
		v, ok := ToFloat(value)
		if !ok {
			return errors.InvalidInput(fmt.Sprintf("report %s expects numeric samples, got %T", r.Name, value))
		}
		r.Values = append(r.Values, v)
	case Counter:
		key, err := NormalizeKey(value)
		if err != nil {
			return errors.Wrapf(err, "report %s", r.Name)
		}
		r.increment(key)
	default:
		return errors.UnsupportedKind(r.Kind)
	}
	return nil
}

func (r *Report) increment(key any) {
	if r.index == nil {
		r.index = make(map[any]int, len(r.Counts))
		for i, b := range r.Counts {
			r.index[b.Key] = i
		}
	}
	if i, ok := r.index[key]; ok {
		r.Counts[i].Count++
		return
	}
	r.index[key] = len(r.Counts)
	r.Counts = append(r.Counts, Bucket{Key: key, Count: 1})
}

// Count returns the occurrences recorded for key
func (r *Report) Count(key any) int {
	k, err := NormalizeKey(key)
	if err != nil {
		return 0
	}
	for _, b := range r.Counts {
		if b.Key == k {
			return b.Count
		}
	}
	return 0
}

// CountMap returns the counter contents as a map
func (r *Report) CountMap() map[any]int {
	m := make(map[any]int, len(r.Counts))
	for _, b := range r.Counts {
		m[b.Key] = b.Count
	}
	return m
}

// Clear empties the accumulated values while keeping name, label and kind
func (r *Report) Clear() {
	switch r.Kind {
	case Series:
		r.Values = []float64{}
	case Counter:
		r.Counts = []Bucket{}
	}
	r.index = nil
}

// Len returns the number of samples or buckets
func (r *Report) Len() int {
	if r.Kind == Counter {
		return len(r.Counts)
	}
	return len(r.Values)
}

// NormalizeKey maps a counter key onto its bucket identity. Numbers collapse to float64.
func NormalizeKey(value any) (any, error) {
	if v, ok := ToFloat(value); ok {
		return v, nil
	}
	switch v := value.(type) {
	case string, bool:
		return v, nil
	}
	return nil, errors.InvalidInput(fmt.Sprintf("unsupported counter key type %T", value))
}

// ToFloat converts any Go numeric value to float64
func ToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
