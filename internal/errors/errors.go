// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name or index outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPromotion indicates a promotion onto a non-pawn or to a bad piece kind.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrNoPromotionPending indicates a promotion action outside the promotion sub-flow.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOracle indicates a reference move generator rejected a position.
	ErrOracle = errors.New("oracle failure")
)

// FENError reports which FEN field failed to parse and why.
// It implements the error interface and unwraps to its cause.
type FENError struct {
	Err    error  // The underlying error, normally ErrInvalidFEN
	Field  int    // 1-based FEN field number (0 if the whole string is at fault)
	Text   string // The offending field text
	Reason string // Human-readable detail
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field > 0 {
		parts = append(parts, fmt.Sprintf("field %d", e.Field))
	}
	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "FEN error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the FENError wrapper.
func (e *FENError) Unwrap() error {
	return e.Err
}

// NewFENError builds a FENError wrapping ErrInvalidFEN.
func NewFENError(field int, text, reason string) *FENError {
	return &FENError{Err: ErrInvalidFEN, Field: field, Text: text, Reason: reason}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
