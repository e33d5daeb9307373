package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// BookingDetails holds the fields opportunistically pulled out of conversation
// text. Each field is extracted independently; a field that did not match
// stays empty. No field's extraction depends on another having succeeded.
type BookingDetails struct {
	Name     string
	Email    string
	Date     string // "YYYY-MM-DD"
	Time     string // 24-hour "HH:MM"
	Duration string // e.g. "2 hours"
	Purpose  string
}

// Empty reports whether nothing at all was extracted, which the dialogue
// policy treats as "no booking information found".
func (d BookingDetails) Empty() bool {
	return d == BookingDetails{}
}

// ---------- package-level compiled regexes ----------

var (
	nameRE     = regexp.MustCompile(`(?i:name is|i'm|i am|my name's)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	emailRE    = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
	dateRE     = regexp.MustCompile(`(?i)\b(?:on|for)\s+(today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday|\d{1,2}(?:st|nd|rd|th)?(?:\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*)?)\b`)
	timeRE     = regexp.MustCompile(`(?i)(?:\bat\b|@)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	durationRE = regexp.MustCompile(`(?i)\bfor\s+(\d+)\s*(hours?|hrs?|minutes?|mins?)\b`)
	purposeRE  = regexp.MustCompile(`(?i:\bfor\b|purpose:|reason:)\s+([a-z\s]*(?:meeting|interview|work|discussion|presentation))`)
)

// ExtractBookingDetails scans a block of free text (the concatenated
// transcript) and pulls out up to six booking fields. The now argument anchors
// relative day words like "tomorrow".
func ExtractBookingDetails(text string, now time.Time) BookingDetails {
	var d BookingDetails

	if m := nameRE.FindStringSubmatch(text); m != nil {
		d.Name = m[1]
	}
	if m := emailRE.FindString(text); m != "" {
		d.Email = m
	}
	if m := dateRE.FindStringSubmatch(text); m != nil {
		d.Date = resolveDate(m[1], now)
	}
	if m := timeRE.FindStringSubmatch(text); m != nil {
		d.Time = resolveTime(m[1], m[2], m[3])
	}
	if m := durationRE.FindStringSubmatch(text); m != nil {
		d.Duration = normalizeDuration(m[1], m[2])
	}
	if m := purposeRE.FindStringSubmatch(text); m != nil {
		d.Purpose = strings.TrimSpace(m[1])
	}

	return d
}

// resolveDate maps a matched day token to a calendar date. Only "tomorrow"
// produces an offset; weekday names and explicit day numbers are recognized
// syntactically but collapse to today's date, matching the original policy.
func resolveDate(token string, now time.Time) string {
	if strings.EqualFold(token, "tomorrow") {
		now = now.AddDate(0, 0, 1)
	}
	return now.Format("2006-01-02")
}

// resolveTime converts a matched 12-hour clock reading to zero-padded
// 24-hour "HH:MM". Missing minutes default to "00".
func resolveTime(hourStr, minuteStr, meridiem string) string {
	hour, _ := strconv.Atoi(hourStr)
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if minuteStr == "" {
		minuteStr = "00"
	}
	return fmt.Sprintf("%02d:%s", hour, minuteStr)
}

// normalizeDuration rewrites the unit to a canonical plural form.
func normalizeDuration(amount, unit string) string {
	if strings.HasPrefix(strings.ToLower(unit), "h") {
		return amount + " hours"
	}
	return amount + " minutes"
}
