package media

import (
	"testing"
	"time"
)

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"5,5", 5500 * time.Millisecond},
		{"90", 90 * time.Second},
		{"10:30", 630 * time.Second},
		{"01:02:03", 3723 * time.Second},
		{" 00:00:01.25 ", 1250 * time.Millisecond},
	}
	for _, tt := range tests {
		got, err := ParseTimecode(tt.in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: want %s got %s", tt.in, tt.want, got)
		}
	}
}

func TestParseTimecodeRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "-1", "00:70", "1:2:3:4", "abc", "1::2"} {
		if _, err := ParseTimecode(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatTimecode(t *testing.T) {
	if got := FormatTimecode(3723 * time.Second); got != "01:02:03" {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := FormatTimecode(1500 * time.Millisecond); got != "00:00:01.500" {
		t.Fatalf("unexpected format with millis: %s", got)
	}
	if got := FormatTimecode(-time.Second); got != "00:00:00" {
		t.Fatalf("negative should clamp to zero, got %s", got)
	}
	if got := FormatSeconds(2500 * time.Millisecond); got != "2.500" {
		t.Fatalf("unexpected seconds format: %s", got)
	}
}
