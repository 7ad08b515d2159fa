package fava

import (
	"encoding/json"
	"testing"
)

func TestParseFrankfurter(t *testing.T) {
	payload := `{
		"base": "USD",
		"date": "2024-01-15",
		"rates": {"GBP": 0.73, "EUR": 0.85}
	}`

	var jobj any
	if err := json.Unmarshal([]byte(payload), &jobj); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	observations, err := parseFrankfurter(jobj)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(observations) != 2 {
		t.Fatalf("got %d observations, want 2", len(observations))
	}

	// Symbols come out sorted.
	want := []Observation{
		obs("2024-01-15", "USD", "EUR", 0.85),
		obs("2024-01-15", "USD", "GBP", 0.73),
	}
	for i := range want {
		got := observations[i]
		if got.Date != want[i].Date || got.Base != want[i].Base || got.Quote != want[i].Quote || !got.Rate.Equal(want[i].Rate) {
			t.Errorf("observation[%d] = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestParseFrankfurter_Malformed(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"missing date", `{"base":"USD","rates":{"EUR":0.85}}`},
		{"date not a string", `{"base":"USD","date":42,"rates":{"EUR":0.85}}`},
		{"invalid date", `{"base":"USD","date":"someday","rates":{"EUR":0.85}}`},
		{"missing base", `{"date":"2024-01-15","rates":{"EUR":0.85}}`},
		{"missing rates", `{"base":"USD","date":"2024-01-15"}`},
		{"rate not a number", `{"base":"USD","date":"2024-01-15","rates":{"EUR":"cheap"}}`},
		{"bad symbol", `{"base":"USD","date":"2024-01-15","rates":{"euros":0.85}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var jobj any
			if err := json.Unmarshal([]byte(tc.payload), &jobj); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := parseFrankfurter(jobj); err == nil {
				t.Errorf("parseFrankfurter(%s) succeeded, want an error", tc.payload)
			}
		})
	}
}
