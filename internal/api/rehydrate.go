package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var isoDate = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}([.][0-9]+)?Z?(\+[0-9]{2}:[0-9]{2})?$`)

const naiveLayout = "2006-01-02T15:04:05.999999999"

// rehydrate rewrites every ISO-8601 string inside raw into RFC 3339 so that
// time.Time fields decode regardless of whether the server sent a zone.
func rehydrate(raw json.RawMessage) (json.RawMessage, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}

	changed := false
	v = walk(v, &changed)
	if !changed {
		return raw, nil
	}

	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return out, nil
}

func walk(v any, changed *bool) any {
	switch x := v.(type) {
	case map[string]any:
		for k, child := range x {
			x[k] = walk(child, changed)
		}
		return x
	case []any:
		for i, child := range x {
			x[i] = walk(child, changed)
		}
		return x
	case string:
		t, ok := ParseISO(x)
		if !ok {
			return x
		}
		normalized := t.Format(time.RFC3339Nano)
		if normalized != x {
			*changed = true
		}
		return normalized
	default:
		return v
	}
}

// ParseISO parses s when it looks like an ISO-8601 timestamp. Timestamps
// without a zone are read as UTC.
func ParseISO(s string) (time.Time, bool) {
	if !isoDate.MatchString(s) {
		return time.Time{}, false
	}

	if i := strings.Index(s, "Z+"); i >= 0 {
		s = s[:i] + s[i+1:]
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	t, err := time.ParseInLocation(naiveLayout, strings.TrimSuffix(s, "Z"), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatISO encodes t the way the API expects query and body timestamps.
func FormatISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
