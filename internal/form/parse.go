package form

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var errEmpty = errors.New("empty value")

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// parseDate accepts a date, a date with minutes or an RFC3339 timestamp.
// Values without a zone are read as UTC.
func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errEmpty
	}
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// formatDateTime renders minutes for the picker and falls back to RFC3339
// when the stored time carries seconds, so a load then build keeps it.
func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.UTC()
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return t.Format(time.RFC3339Nano)
	}
	return t.Format("2006-01-02T15:04")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDateTime(*t)
}

func optionalDate(v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := parseDate(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseInt(v string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(v))
}

// intOrZero treats an empty field as zero.
func intOrZero(v string) (int, error) {
	if strings.TrimSpace(v) == "" {
		return 0, nil
	}
	return parseInt(v)
}

func optionalInt(v string) (*int, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	n, err := parseInt(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

func optionalFloat(v string) (*float64, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	f, err := parseFloat(v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false, nil
	case "1", "true", "on", "yes":
		return true, nil
	}
	return false, errors.New("not a boolean: " + v)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func intString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func intPtrString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func floatString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func floatPtrString(f *float64) string {
	if f == nil {
		return ""
	}
	return floatString(*f)
}

// nonNegativeInt reports whether v is a whole number of zero or more.
func nonNegativeInt(v string) bool {
	n, err := parseInt(v)
	return err == nil && n >= 0
}
