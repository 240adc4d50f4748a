package nbastats

import (
	"fmt"
	"strconv"
	"strings"
)

// The stats provider answers every endpoint with the same tabular envelope:
// named result sets, a header row, and untyped value rows.
type envelope struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

func (e envelope) find(name string) (resultSet, bool) {
	for _, set := range e.ResultSets {
		if set.Name == name {
			return set, true
		}
	}
	return resultSet{}, false
}

func (s resultSet) rows() []row {
	index := make(map[string]int, len(s.Headers))
	for i, header := range s.Headers {
		index[header] = i
	}
	out := make([]row, 0, len(s.RowSet))
	for _, values := range s.RowSet {
		out = append(out, row{index: index, values: values})
	}
	return out
}

type row struct {
	index  map[string]int
	values []any
}

func (r row) cell(column string) (any, bool) {
	idx, ok := r.index[column]
	if !ok || idx >= len(r.values) {
		return nil, false
	}
	value := r.values[idx]
	if value == nil {
		return nil, false
	}
	return value, true
}

// float returns nil for absent columns, null cells, and non-numeric text.
func (r row) float(column string) *float64 {
	value, ok := r.cell(column)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case float64:
		return &v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

func (r row) int(column string) int {
	if v := r.float(column); v != nil {
		return int(*v)
	}
	return 0
}

func (r row) int64(column string) int64 {
	if v := r.float(column); v != nil {
		return int64(*v)
	}
	return 0
}

func (r row) text(column string) string {
	value, ok := r.cell(column)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
