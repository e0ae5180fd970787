package metrics

import "fmt"

// Point is one dated observation in a metric series.
// Date is the period-end in "2006-01-02" form; dates are unique per series.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series is a named time series of metric values for one ticker.
type Series struct {
	Key    Key     `json:"key"`
	Unit   string  `json:"unit"`
	Points []Point `json:"points"`
}

// Store is an immutable snapshot of a ticker's metric series, keyed by
// metric. The engine never mutates a store; a refresh produces a new one.
type Store struct {
	series map[Key]Series
	index  map[Key]map[string]float64
}

// NewStore builds a store from the given series. Every series key must
// belong to the closed metric identifier set; an unknown key is a caller
// bug and is rejected here rather than silently ignored at lookup time.
func NewStore(series []Series) (*Store, error) {
	s := &Store{
		series: make(map[Key]Series, len(series)),
		index:  make(map[Key]map[string]float64, len(series)),
	}
	for _, sr := range series {
		if !IsKnown(sr.Key) {
			return nil, fmt.Errorf("unknown metric key %q", sr.Key)
		}
		if _, dup := s.series[sr.Key]; dup {
			return nil, fmt.Errorf("duplicate metric key %q", sr.Key)
		}
		byDate := make(map[string]float64, len(sr.Points))
		for _, p := range sr.Points {
			byDate[p.Date] = p.Value
		}
		s.series[sr.Key] = sr
		s.index[sr.Key] = byDate
	}
	return s, nil
}

// ValueAt returns the value of metric k at the given period-end date.
// The second return is false when the series or the point is absent.
func (s *Store) ValueAt(k Key, period string) (float64, bool) {
	byDate, ok := s.index[k]
	if !ok {
		return 0, false
	}
	v, ok := byDate[period]
	return v, ok
}

// Series returns the underlying series list, in no particular order.
func (s *Store) Series() []Series {
	out := make([]Series, 0, len(s.series))
	for _, sr := range s.series {
		out = append(out, sr)
	}
	return out
}

// Len returns the number of series held by the store.
func (s *Store) Len() int { return len(s.series) }
