package currency

import (
	"errors"
	"strconv"

	"coffee-fund-bot/internal/models"
)

// ErrInvalidAmount is returned for any text that is not a well-formed
// amount. Callers only need to know that the text did not parse.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse reads an amount in the dash notation. The grammar is an ordered
// choice over four body forms after an optional sign:
//
//	major sep minor   "1.20", "1,2"
//	major sep '-'     "1.-"
//	'-' sep minor     "-.05"
//	major             "1"
//
// A single minor digit counts as tenths. A leading '-' is a sign only when
// the next character is not a separator ("-.05" is five Rappen, "-2.5" is
// minus two fifty); any spaces directly after a sign are skipped. Trailing
// unconsumed input fails the whole parse.
func Parse(text string) (models.Rappen, error) {
	c := &cursor{input: text}

	negative := c.sign()
	major, minor, ok := c.body()
	if !ok || !c.done() {
		return 0, ErrInvalidAmount
	}

	value := models.Rappen(major*100 + minor)
	if negative {
		value = -value
	}
	return value, nil
}

// cursor is a position into the input; alternatives rewind it on failure.
type cursor struct {
	input string
	pos   int
}

func (c *cursor) done() bool {
	return c.pos == len(c.input)
}

func (c *cursor) eat(b byte) bool {
	if c.pos < len(c.input) && c.input[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

// sign consumes a leading '-' unless it directly precedes a separator, in
// which case the dash belongs to the body ("-.05" has no sign).
func (c *cursor) sign() bool {
	if c.pos >= len(c.input) || c.input[c.pos] != '-' {
		return false
	}
	if next := c.pos + 1; next < len(c.input) && isSeparator(c.input[next]) {
		return false
	}
	c.pos++
	for c.pos < len(c.input) && c.input[c.pos] == ' ' {
		c.pos++
	}
	return true
}

// body tries the four alternatives in order; the first full match wins.
func (c *cursor) body() (major, minor int64, ok bool) {
	start := c.pos

	if major, ok := c.major(); ok {
		if c.separator() {
			if minor, ok := c.minor(); ok {
				return major, minor, true
			}
		}
		c.pos = start
	}

	if major, ok := c.major(); ok {
		if c.separator() && c.eat('-') {
			return major, 0, true
		}
		c.pos = start
	}

	if c.eat('-') {
		if c.separator() {
			if minor, ok := c.minor(); ok {
				return 0, minor, true
			}
		}
		c.pos = start
	}

	if major, ok := c.major(); ok {
		return major, 0, true
	}

	return 0, 0, false
}

func (c *cursor) major() (int64, bool) {
	start := c.pos
	for c.pos < len(c.input) && isDigit(c.input[c.pos]) {
		c.pos++
	}
	if c.pos == start {
		return 0, false
	}

	value, err := strconv.ParseInt(c.input[start:c.pos], 10, 64)
	if err != nil {
		c.pos = start
		return 0, false
	}
	return value, true
}

// minor takes two digits as Rappen, or a single digit as tenths. It never
// looks past the second digit; leftover digits fail the parse as trailing
// input.
func (c *cursor) minor() (int64, bool) {
	if c.pos+1 < len(c.input) && isDigit(c.input[c.pos]) && isDigit(c.input[c.pos+1]) {
		value := int64(c.input[c.pos]-'0')*10 + int64(c.input[c.pos+1]-'0')
		c.pos += 2
		return value, true
	}
	if c.pos < len(c.input) && isDigit(c.input[c.pos]) {
		value := int64(c.input[c.pos]-'0') * 10
		c.pos++
		return value, true
	}
	return 0, false
}

func (c *cursor) separator() bool {
	if c.pos < len(c.input) && isSeparator(c.input[c.pos]) {
		c.pos++
		return true
	}
	return false
}

func isSeparator(b byte) bool {
	return b == '.' || b == ','
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
