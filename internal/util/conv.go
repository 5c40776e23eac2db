package util

import (
	"strconv"
	"strings"
	"time"
)

// ParseUintQuery parses a numeric query parameter, returning def when the
// parameter is absent or malformed.
func ParseUintQuery(s string, def uint) uint {
	if s == "" {
		return def
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return def
	}
	return uint(v)
}

func ParseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// ParseDateParam parses a yyyy-mm-dd query parameter as a local-midnight
// timestamp. Returns nil when absent or malformed.
func ParseDateParam(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// SplitCSV splits a comma-separated query parameter, dropping empty items.
func SplitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
