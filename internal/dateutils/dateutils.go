// Package dateutils provides date parsing for the formats that appear in
// bank statement exports.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	DateLayoutIndian    = "02/01/2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"
)

// CommonFormats is the ordered list of formats tried when parsing dates.
// Day-first formats precede month-first because the bank exports this tool
// targets are day-first.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutIndian,
	DateLayoutEuropean,
	"02-01-2006",
	"2/1/2006",
	DateLayoutWithMonth,
	"02 Jan 2006",
	DateLayoutFull,
	"2006/01/02",
	DateLayoutUS,
	"Jan 2, 2006",
}

var spaceRe = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using the common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return spaceRe.ReplaceAllString(dateStr, " ")
}
