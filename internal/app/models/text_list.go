package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TextList is the canonical form of free-text list fields (achievements, skills,
// required skills). Clients send either a delimited string or a JSON array; both
// are normalized into an ordered list of trimmed, non-empty entries.
type TextList []string

// ParseTextList splits a delimited string on commas, semicolons and newlines.
func ParseTextList(raw string) TextList {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})
	return NewTextList(fields...)
}

// NewTextList trims every item and drops the empty ones, preserving order.
func NewTextList(items ...string) TextList {
	list := make(TextList, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// UnmarshalJSON accepts null, a string or an array of strings.
func (l *TextList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = TextList{}
		return nil
	}

	switch data[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*l = ParseTextList(raw)
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("text list must contain only strings: %w", err)
		}
		*l = NewTextList(items...)
		return nil
	default:
		return fmt.Errorf("text list must be a string or an array of strings")
	}
}

// MarshalJSON always emits an array, never null.
func (l TextList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// String joins the entries for display and text search.
func (l TextList) String() string {
	return strings.Join(l, ", ")
}
