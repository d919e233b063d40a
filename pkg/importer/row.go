package importer

import (
	"fmt"
	"strconv"
	"strings"
)

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// row reads one record by header alias. The first conversion failure is
// kept in err and later reads become no-ops.
type row struct {
	header map[string]int
	rec    []string
	err    error
}

func headerIndex(head []string) map[string]int {
	m := make(map[string]int, len(head))
	for i, h := range head {
		if _, dup := m[norm(h)]; !dup {
			m[norm(h)] = i
		}
	}
	return m
}

func (r *row) blank() bool {
	for _, v := range r.rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// findAny returns the cell for the first alias present in the header.
func (r *row) findAny(keys ...string) string {
	for _, k := range keys {
		if idx, ok := r.header[norm(k)]; ok {
			if idx < len(r.rec) {
				return strings.TrimSpace(r.rec[idx])
			}
			return ""
		}
	}
	return ""
}

func (r *row) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

func (r *row) text(keys ...string) string { return r.findAny(keys...) }

func (r *row) optText(keys ...string) *string {
	v := r.findAny(keys...)
	if v == "" {
		return nil
	}
	return &v
}

func (r *row) parseUint(key, v string) uint {
	// spreadsheets hand back whole numbers as "12.0"
	v = strings.TrimSuffix(v, ".0")
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.fail("column %s: %q is not an id", key, v)
		return 0
	}
	return uint(n)
}

func (r *row) id(keys ...string) uint {
	v := r.findAny(keys...)
	if v == "" {
		r.fail("column %s is required", keys[0])
		return 0
	}
	return r.parseUint(keys[0], v)
}

// optID returns 0 when the cell is empty.
func (r *row) optID(keys ...string) uint {
	v := r.findAny(keys...)
	if v == "" {
		return 0
	}
	return r.parseUint(keys[0], v)
}

func (r *row) nullableID(keys ...string) *uint {
	v := r.findAny(keys...)
	if v == "" || strings.EqualFold(v, "null") {
		return nil
	}
	n := r.parseUint(keys[0], v)
	return &n
}

func (r *row) num(keys ...string) int {
	v := strings.TrimSuffix(r.findAny(keys...), ".0")
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail("column %s: %q is not a number", keys[0], v)
	}
	return n
}

func (r *row) optNum(keys ...string) *int {
	if r.findAny(keys...) == "" {
		return nil
	}
	n := r.num(keys...)
	return &n
}
