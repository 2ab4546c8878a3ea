package util

import (
	"reflect"
	"testing"
)

func TestParseEnvList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ,, c ", []string{"a", "b", "c"}},
		{",,,", []string{}},
	}
	for _, tc := range cases {
		if got := ParseEnvList(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseEnvList(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("TEST_ENV_KEY", "set")
	if got := GetEnvWithDefault("TEST_ENV_KEY", "fallback"); got != "set" {
		t.Errorf("Expected 'set', got %q", got)
	}

	t.Setenv("TEST_ENV_KEY", "")
	if got := GetEnvWithDefault("TEST_ENV_KEY", "fallback"); got != "fallback" {
		t.Errorf("Expected 'fallback', got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("abcdefghij", 3, 3, "..."); got != "abc...hij" {
		t.Errorf("Expected 'abc...hij', got %q", got)
	}
	if got := TruncateString("short", 3, 3, "..."); got != "short" {
		t.Errorf("Short strings must pass through, got %q", got)
	}
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	type payload struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Tags  []string `json:"tags,omitempty"`
	}

	in := payload{Name: "gpt-4o", Count: 2, Tags: []string{"a", "b"}}
	data, err := MarshalJSON(in)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var out payload
	if err := UnmarshalJSON(data, &out); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("Round trip mismatch: %+v vs %+v", in, out)
	}
}
