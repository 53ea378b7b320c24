package models

import (
	"encoding/json"
	"strings"
)

// AnswerValue is a user's answer to one question as it arrived on the wire:
// a single string for radio/text/dropdown questions or a list of strings for
// checkbox questions. Any other JSON value is kept as its literal text so
// grading can treat it as a plain (non-matching) string instead of failing.
// The zero value represents an unanswered question.
type AnswerValue struct {
	list   []string
	single string
	isList bool
}

func SingleAnswer(value string) AnswerValue {
	return AnswerValue{single: value}
}

func MultiAnswer(values ...string) AnswerValue {
	return AnswerValue{list: values, isList: true}
}

// IsList reports whether the answer arrived as a JSON array.
func (a AnswerValue) IsList() bool {
	return a.isList
}

// Values returns the answer as a set of strings; empty for non-list answers.
func (a AnswerValue) Values() []string {
	return a.list
}

// String flattens the answer to a single string for scalar comparison. Lists
// collapse to their comma-joined form, matching how the submitted value would
// stringify; a missing answer is the empty string.
func (a AnswerValue) String() string {
	if a.isList {
		return strings.Join(a.list, ",")
	}
	return a.single
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = AnswerValue{single: single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = AnswerValue{list: list, isList: true}
		return nil
	}

	// Numbers, booleans, mixed arrays: keep the literal so the answer still
	// grades as an ordinary wrong string. JSON null lands in the string
	// branch above and decodes to the zero (unanswered) value.
	*a = AnswerValue{single: strings.TrimSpace(string(data))}
	return nil
}

// MarshalJSON echoes the answer back in the shape it was supplied.
func (a AnswerValue) MarshalJSON() ([]byte, error) {
	if a.isList {
		return json.Marshal(a.list)
	}
	if a.single == "" {
		return []byte("null"), nil
	}
	return json.Marshal(a.single)
}
