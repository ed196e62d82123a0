package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (minute|minutes|min|mins|hour|hours|day|days|week|weeks)$`)
	dayAtRe      = regexp.MustCompile(`^(today|tomorrow|next [a-z]+)(?: at)?(?: (\d{1,2}:\d{2}))?$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser turns task schedule expressions into absolute times.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser that interprets wall clock times in loc. A nil loc means UTC.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Parse accepts RFC3339 timestamps and the relative forms
//
//	now
//	in 30 minutes | in 2 hours | in 3 days | in 1 week
//	today 18:00 | tomorrow | tomorrow at 09:30 | next monday 08:00
//
// A day without a clock time means midnight in the parser's location.
func (p *Parser) Parse(expr string, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(expr)
	if at, err := time.Parse(time.RFC3339, raw); err == nil {
		return at, nil
	}

	s := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if s == "now" {
		return now, nil
	}
	if m := inDurationRe.FindStringSubmatch(s); m != nil {
		return p.parseIn(m[1], m[2], now)
	}
	if m := dayAtRe.FindStringSubmatch(s); m != nil {
		return p.parseDayAt(m[1], m[2], now)
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

func (p *Parser) parseIn(amountStr, unit string, now time.Time) (time.Time, error) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: amount %q", ErrUnrecognized, amountStr)
	}

	switch {
	case strings.HasPrefix(unit, "min"):
		return now.Add(time.Duration(amount) * time.Minute), nil
	case strings.HasPrefix(unit, "hour"):
		return now.Add(time.Duration(amount) * time.Hour), nil
	case strings.HasPrefix(unit, "day"):
		return now.AddDate(0, 0, amount), nil
	default:
		return now.AddDate(0, 0, amount*7), nil
	}
}

func (p *Parser) parseDayAt(day, clock string, now time.Time) (time.Time, error) {
	local := now.In(p.location)

	offset := 0
	switch {
	case day == "today":
	case day == "tomorrow":
		offset = 1
	default:
		target, ok := weekdays[strings.TrimPrefix(day, "next ")]
		if !ok {
			return time.Time{}, fmt.Errorf("%w: weekday %q", ErrUnrecognized, day)
		}
		offset = int(target - local.Weekday())
		if offset <= 0 {
			offset += 7
		}
	}

	hour, minute := 0, 0
	if clock != "" {
		t, err := time.Parse(clockLayout, clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: clock %q", ErrUnrecognized, clock)
		}
		hour, minute = t.Hour(), t.Minute()
	}

	return time.Date(local.Year(), local.Month(), local.Day()+offset, hour, minute, 0, 0, p.location), nil
}
