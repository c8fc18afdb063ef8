package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Define creates a sentinel already marked with a category.
func Define(msg string, category error) error {
	return cr.Mark(cr.New(msg), category)
}

// WithCause returns sentinel wrapped with msg, keeping cause for %+v output.
// errors.Is matches sentinel; cause stays out of the unwrap chain.
func WithCause(sentinel, cause error, msg string) error {
	return cr.WithSecondaryError(cr.Wrap(sentinel, msg), cause)
}

// Is matches both wrapped causes and marks.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
