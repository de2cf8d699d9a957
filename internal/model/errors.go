package model

import (
	"fmt"
	"strings"
)

// ErrorKind classifies an input validation failure.
// Keep these values stable; they are used as metric labels.
type ErrorKind string

const (
	KindInvalidCapacity      ErrorKind = "INVALID_CAPACITY"
	KindInvalidCandidateList ErrorKind = "INVALID_CANDIDATE_LIST"
	KindMissingField         ErrorKind = "MISSING_FIELD"
	KindInvalidName          ErrorKind = "INVALID_NAME"
	KindInvalidSpacePerUnit  ErrorKind = "INVALID_SPACE_PER_UNIT"
	KindInvalidQuantity      ErrorKind = "INVALID_QUANTITY"
	KindInvalidValue         ErrorKind = "INVALID_VALUE"
)

// Sentinels for errors.Is. A *ValidationError matches the sentinel of its Kind.
var (
	ErrInvalidCapacity      = &ValidationError{Kind: KindInvalidCapacity}
	ErrInvalidCandidateList = &ValidationError{Kind: KindInvalidCandidateList}
	ErrMissingField         = &ValidationError{Kind: KindMissingField}
	ErrInvalidName          = &ValidationError{Kind: KindInvalidName}
	ErrInvalidSpacePerUnit  = &ValidationError{Kind: KindInvalidSpacePerUnit}
	ErrInvalidQuantity      = &ValidationError{Kind: KindInvalidQuantity}
	ErrInvalidValue         = &ValidationError{Kind: KindInvalidValue}
)

// ValidationError describes one rejected input.
// Index is the candidate position (-1 when the error is not about a single candidate).
type ValidationError struct {
	Kind    ErrorKind
	Index   int
	Region  string
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return strings.ToLower(strings.ReplaceAll(string(e.Kind), "_", " "))
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewCapacityError(msg string) *ValidationError {
	return &ValidationError{Kind: KindInvalidCapacity, Index: -1, Message: msg}
}

func NewCandidateListError(msg string) *ValidationError {
	return &ValidationError{Kind: KindInvalidCandidateList, Index: -1, Message: msg}
}

// NewMissingFieldError reports the fields absent from the record at index.
func NewMissingFieldError(index int, fields []string) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingField,
		Index:   index,
		Fields:  fields,
		Message: fmt.Sprintf("Item at index %d is missing keys: %s", index, strings.Join(fields, ", ")),
	}
}

// NewFieldError reports an invalid field value on the candidate at index.
func NewFieldError(kind ErrorKind, index int, region, field, msg string) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Index:   index,
		Region:  region,
		Fields:  []string{field},
		Message: msg,
	}
}
