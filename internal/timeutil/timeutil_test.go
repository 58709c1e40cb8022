package timeutil

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-09-13")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2026-09-13" {
		t.Fatalf("unexpected round trip %q", got)
	}

	if _, err := ParseDate("13/09/2026"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestFormatGameDate(t *testing.T) {
	day := time.Date(2026, time.September, 13, 17, 0, 0, 0, time.UTC)
	if got := FormatGameDate(day); got != "Sun, Sep 13" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestFormatKickoff(t *testing.T) {
	kickoff := time.Date(2026, time.September, 13, 13, 5, 0, 0, time.UTC)
	if got := FormatKickoff(kickoff); got != "1:05 PM UTC" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestFormatRelative(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		published time.Time
		want      string
	}{
		{now.Add(-30 * time.Minute), "Just now"},
		{now.Add(-2 * time.Hour), "2 hours ago"},
		{now.Add(-23 * time.Hour), "23 hours ago"},
		{now.Add(-30 * time.Hour), "1 day ago"},
		{now.Add(-72 * time.Hour), "3 days ago"},
	}

	for _, tc := range cases {
		if got := FormatRelative(tc.published, now); got != tc.want {
			t.Fatalf("published %v: expected %q, got %q", tc.published, tc.want, got)
		}
	}
}
