// Package duration parses compact countdown durations such as "1h2m30s".
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalid is matched by every *ParseError via errors.Is.
var ErrInvalid = errors.New("invalid duration")

// ParseError describes why a duration string was rejected.
// Pos is the byte offset of the offending character, or -1 when the
// problem concerns the input as a whole.
type ParseError struct {
	Input  string
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("invalid duration %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid duration %q at offset %d: %s", e.Input, e.Pos, e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrInvalid }

// Components holds the values written for each unit. Units absent from
// the input are zero.
type Components struct {
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

var unitSeconds = map[byte]int64{'h': 3600, 'm': 60, 's': 1}

// Total returns the number of seconds the components add up to.
// The caller is expected to have checked for overflow (ParseComponents does).
func (c Components) Total() int64 {
	return c.Hours*unitSeconds['h'] + c.Minutes*unitSeconds['m'] + c.Seconds
}

// Parse returns the total number of seconds described by s.
func Parse(s string) (int64, error) {
	c, err := ParseComponents(s)
	if err != nil {
		return 0, err
	}
	return c.Total(), nil
}

// ParseComponents scans s as a sequence of <digits><unit> pairs where unit
// is one of h, m or s. Each unit may appear at most once, in any order.
// Digits left over after the last unit are rejected.
func ParseComponents(s string) (Components, error) {
	var c Components
	if s == "" {
		return c, &ParseError{Input: s, Pos: -1, Reason: "empty input"}
	}
	seen := map[byte]bool{}
	start := 0
	var total int64
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			continue
		}
		weight, ok := unitSeconds[ch]
		if !ok {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return Components{}, &ParseError{Input: s, Pos: i, Reason: fmt.Sprintf("unexpected character %q", r)}
		}
		if i == start {
			return Components{}, &ParseError{Input: s, Pos: i, Reason: fmt.Sprintf("missing number before %q", rune(ch))}
		}
		if seen[ch] {
			return Components{}, &ParseError{Input: s, Pos: i, Reason: fmt.Sprintf("unit %q given more than once", rune(ch))}
		}
		seen[ch] = true
		n, err := strconv.ParseInt(s[start:i], 10, 64)
		if err != nil || n > (math.MaxInt64-total)/weight {
			return Components{}, &ParseError{Input: s, Pos: start, Reason: "value out of range"}
		}
		total += n * weight
		switch ch {
		case 'h':
			c.Hours = n
		case 'm':
			c.Minutes = n
		case 's':
			c.Seconds = n
		}
		start = i + 1
	}
	if start < len(s) {
		if start == 0 {
			return Components{}, &ParseError{Input: s, Pos: -1, Reason: "no unit given (use h, m or s)"}
		}
		return Components{}, &ParseError{Input: s, Pos: start, Reason: fmt.Sprintf("trailing digits %q without a unit", s[start:])}
	}
	return c, nil
}

// Format renders seconds in canonical hours-minutes-seconds order, omitting
// zero components. Zero renders as "0s". Negative values render as "0s".
func Format(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	sec := seconds % 60
	var b strings.Builder
	if h > 0 {
		b.WriteString(strconv.FormatInt(h, 10))
		b.WriteByte('h')
	}
	if m > 0 {
		b.WriteString(strconv.FormatInt(m, 10))
		b.WriteByte('m')
	}
	if sec > 0 {
		b.WriteString(strconv.FormatInt(sec, 10))
		b.WriteByte('s')
	}
	return b.String()
}
