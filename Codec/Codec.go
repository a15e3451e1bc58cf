// Package Codec reads and writes the comma separated integer text the sorter works on.
// A text is one or more lines; each line is a list of base 10 integers separated by commas. Tokens are trimmed, and
// may carry a leading sign.
package Codec

import (
	"errors"
	"strconv"
	"strings"
)

// Reason a token was rejected.
type Reason uint8

const (
	NotANumber Reason = iota
	OutOfRange
)

func (r Reason) String() string {
	switch r {
	case NotANumber:
		return "not a number"
	case OutOfRange:
		return "out of range"
	}
	return "Reason(" + strconv.Itoa(int(r)) + ")"
}

// ParseError records a token Parse skipped. It never stops the parse.
type ParseError struct {
	Token  string
	Reason Reason
}

func (e ParseError) Error() string {
	return strconv.Quote(e.Token) + ": " + e.Reason.String()
}

// Parse every token in text. Tokens that aren't int64 values are skipped and reported in errs, in the order they
// appear. Empty tokens, such as blank lines or a trailing comma, are skipped silently.
func Parse(text string) (vs []int64, errs []ParseError) {
	vs = make([]int64, 0, strings.Count(text, ",")+1)
	for line := range strings.Lines(text) {
		for tok := range strings.SplitSeq(line, ",") {
			if tok = strings.TrimSpace(tok); tok == "" {
				continue
			}
			if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
				vs = append(vs, v)
			} else if errors.Is(err, strconv.ErrRange) {
				errs = append(errs, ParseError{tok, OutOfRange})
			} else {
				errs = append(errs, ParseError{tok, NotANumber})
			}
		}
	}
	return
}

// Serialize vs as a single line joined by commas, without a trailing comma or newline.
func Serialize(vs []int64) string {
	return string(AppendSerialized(make([]byte, 0, len(vs)*8), vs))
}

// AppendSerialized appends the text Serialize would return to dst.
func AppendSerialized(dst []byte, vs []int64) []byte {
	for i, v := range vs {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, v, 10)
	}
	return dst
}
