package services

import (
	"strings"
	"time"
	"unicode/utf8"
)

func requireText(field, value string, max int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalidField(field, "is required")
	}
	if utf8.RuneCountInString(value) > max {
		return "", invalidField(field, "is too long")
	}
	return value, nil
}

func optionalText(field string, value *string, max int) error {
	if value != nil && utf8.RuneCountInString(*value) > max {
		return invalidField(field, "is too long")
	}
	return nil
}

// normalizeTimeOfDay accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func normalizeTimeOfDay(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*value)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			out := t.Format("15:04:05")
			return &out, nil
		}
	}
	return nil, invalidField("due_time", "must be HH:MM or HH:MM:SS")
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
