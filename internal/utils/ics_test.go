package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildICS_Layout(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	doc := BuildICS(ICSEvent{
		UID:         "42-1700000000000@group-companion",
		Stamp:       start,
		Start:       start,
		End:         start.Add(time.Hour),
		Summary:     "ゴミ出し",
		Description: "燃えるゴミ",
	})

	require.True(t, strings.HasPrefix(doc, "BEGIN:VCALENDAR\r\n"))
	require.Contains(t, doc, "VERSION:2.0")
	require.Contains(t, doc, "UID:42-1700000000000@group-companion")
	require.Contains(t, doc, "DTSTART:20240301T093000Z")
	require.Contains(t, doc, "DTEND:20240301T103000Z")
	require.Contains(t, doc, "SUMMARY:ゴミ出し")
	require.Contains(t, doc, "END:VCALENDAR")
}

func TestEscapeICSText(t *testing.T) {
	cases := map[string]string{
		"plain":           "plain",
		"a;b":             "a\\;b",
		"a,b":             "a\\,b",
		"a\\b":            "a\\\\b",
		"line1\nline2":    "line1\\nline2",
		"line1\r\nline2":  "line1\\nline2",
		"semi;comma,back": "semi\\;comma\\,back",
	}

	for input, want := range cases {
		require.Equal(t, want, EscapeICSText(input), "input %q", input)
	}
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "weekly_cleanup", SanitizeFilename("weekly cleanup"))
	require.Equal(t, "report2024", SanitizeFilename(`report"2024";`))
	require.Equal(t, "schedule", SanitizeFilename("ゴミ出し"))
	require.Equal(t, "a-b_c", SanitizeFilename("a-b_c"))
}

func TestParseTimeSlot(t *testing.T) {
	hour, minute, err := ParseTimeSlot("09:30")
	require.NoError(t, err)
	require.Equal(t, 9, hour)
	require.Equal(t, 30, minute)

	_, _, err = ParseTimeSlot("930")
	require.Error(t, err)

	_, _, err = ParseTimeSlot("25:00")
	require.Error(t, err)

	_, _, err = ParseTimeSlot("12:60")
	require.Error(t, err)
}
