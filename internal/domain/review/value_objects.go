package review

import (
	"strings"
	"unicode/utf8"
)

const MaxTextLength = 2000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Text is optional; an all-blank input yields the zero Text.
type Text struct {
	value string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{value: t}, nil
}

func (t Text) String() string { return t.value }
func (t Text) IsEmpty() bool  { return t.value == "" }

func (t Text) Ptr() *string {
	if t.IsEmpty() {
		return nil
	}
	s := t.value
	return &s
}
