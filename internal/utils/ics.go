package utils

import (
	"fmt"
	"strings"
	"time"
)

// ICSEvent describes the single VEVENT emitted by a calendar export.
type ICSEvent struct {
	UID         string
	Stamp       time.Time
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
}

// BuildICS renders a minimal RFC 5545 document with one event. Text fields
// are escaped; timestamps are emitted in UTC.
func BuildICS(ev ICSEvent) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Group Companion//JP",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:" + ev.UID,
		"DTSTAMP:" + FormatICSTime(ev.Stamp),
		"DTSTART:" + FormatICSTime(ev.Start),
		"DTEND:" + FormatICSTime(ev.End),
		"SUMMARY:" + EscapeICSText(ev.Summary),
		"DESCRIPTION:" + EscapeICSText(ev.Description),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

// FormatICSTime renders a timestamp as UTC basic format (YYYYMMDDTHHMMSSZ).
func FormatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

var icsEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\;",
	",", "\\,",
	"\r\n", "\\n",
	"\n", "\\n",
	"\r", "\\n",
)

// EscapeICSText escapes a TEXT value per RFC 5545 section 3.3.11.
func EscapeICSText(s string) string {
	return icsEscaper.Replace(s)
}

// SanitizeFilename reduces a user-supplied title to characters safe in a
// Content-Disposition filename.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "schedule"
	}
	return b.String()
}

// ParseTimeSlot parses an "HH:MM" slot into hour and minute.
func ParseTimeSlot(slot string) (hour, minute int, err error) {
	parts := strings.Split(slot, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}
	if _, err := fmt.Sscanf(slot, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time slot %q out of range", slot)
	}
	return hour, minute, nil
}
