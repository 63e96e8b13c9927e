package common

import (
	"reflect"
	"testing"
)

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		value    string
		fallback int
		want     int
		ok       bool
	}{
		{"10", 1, 10, true},
		{" 3 ", 1, 3, true},
		{"", 50, 50, false},
		{"0", 50, 50, false},
		{"-5", 50, 50, false},
		{"abc", 50, 50, false},
	}

	for _, tt := range tests {
		got, ok := ParsePositiveInt(tt.value, tt.fallback)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePositiveInt(%q, %d) = (%d, %v), want (%d, %v)",
				tt.value, tt.fallback, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "yes", " Yes "}
	for _, v := range truthy {
		if !ParseBool(v) {
			t.Errorf("ParseBool(%q) = false, want true", v)
		}
	}
	falsy := []string{"", "0", "false", "no", "on"}
	for _, v := range falsy {
		if ParseBool(v) {
			t.Errorf("ParseBool(%q) = true, want false", v)
		}
	}
}

func TestNormalizeIndustryList(t *testing.T) {
	got, err := NormalizeIndustryList([]string{" AI ", "Fintech", "AI", "", "SaaS"})
	if err != nil {
		t.Fatalf("NormalizeIndustryList: %v", err)
	}
	want := []string{"AI", "Fintech", "SaaS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizeIndustryListRequiresOne(t *testing.T) {
	if _, err := NormalizeIndustryList([]string{"", "  "}); err == nil {
		t.Fatal("expected an error for an effectively empty list")
	}
}
