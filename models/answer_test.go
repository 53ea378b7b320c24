package models

import (
	"encoding/json"
	"testing"
)

func TestAnswerValueUnmarshalString(t *testing.T) {
	var answer AnswerValue
	if err := json.Unmarshal([]byte(`"Paris"`), &answer); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if answer.IsList() || answer.String() != "Paris" {
		t.Fatalf("got list=%v value=%q, want scalar Paris", answer.IsList(), answer.String())
	}
}

func TestAnswerValueUnmarshalList(t *testing.T) {
	var answer AnswerValue
	if err := json.Unmarshal([]byte(`["Cat","Bird"]`), &answer); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if !answer.IsList() {
		t.Fatalf("expected list answer")
	}
	if got := answer.Values(); len(got) != 2 || got[0] != "Cat" || got[1] != "Bird" {
		t.Fatalf("values = %v", got)
	}
	if answer.String() != "Cat,Bird" {
		t.Fatalf("flattened = %q, want Cat,Bird", answer.String())
	}
}

func TestAnswerValueUnmarshalNonString(t *testing.T) {
	var answer AnswerValue
	if err := json.Unmarshal([]byte(`42`), &answer); err != nil {
		t.Fatalf("numbers must not fail: %v", err)
	}
	if answer.String() != "42" {
		t.Fatalf("literal = %q, want 42", answer.String())
	}

	if err := json.Unmarshal([]byte(`null`), &answer); err != nil {
		t.Fatalf("null must not fail: %v", err)
	}
	if answer.IsList() || answer.String() != "" {
		t.Fatalf("null should decode to the zero answer, got %q", answer.String())
	}
}

func TestAnswerValueMarshalRoundTrip(t *testing.T) {
	for _, raw := range []string{`"Paris"`, `["Cat","Bird"]`, `null`} {
		var answer AnswerValue
		if err := json.Unmarshal([]byte(raw), &answer); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		out, err := json.Marshal(answer)
		if err != nil {
			t.Fatalf("marshal %s: %v", raw, err)
		}
		if string(out) != raw {
			t.Fatalf("round trip %s -> %s", raw, out)
		}
	}
}
