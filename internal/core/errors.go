// ABOUTME: Structured error codes for memory operations using samber/oops
// ABOUTME: Callers classify failures with IsStoreFailure, IsNotFound, IsInvalidInput
package core

import (
	"fmt"

	"github.com/samber/oops"
)

// Error codes attached to memory operation failures
const (
	CodeStoreFailure = "memory.store.failure"
	CodeNotFound     = "memory.store.not_found"
	CodeInvalidInput = "memory.input.invalid"
)

func storeError(err error, op, userID string) error {
	return oops.
		Code(CodeStoreFailure).
		With("op", op, "user_id", userID).
		Wrapf(err, "memory store %s failed", op)
}

func notFoundError(err error, userID, memoryID string) error {
	return oops.
		Code(CodeNotFound).
		With("op", "delete", "user_id", userID, "memory_id", memoryID).
		Wrapf(err, "memory %s not found", memoryID)
}

func invalidInput(op, format string, args ...any) error {
	return oops.
		Code(CodeInvalidInput).
		With("op", op).
		Errorf(format, args...)
}

// CodeOf returns the oops code carried by err, or "" if none
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok || oopsErr.Code() == nil {
		return ""
	}
	return fmt.Sprint(oopsErr.Code())
}

// IsStoreFailure reports whether the memory store rejected an operation
func IsStoreFailure(err error) bool {
	return CodeOf(err) == CodeStoreFailure
}

// IsNotFound reports whether a memory id did not exist
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsInvalidInput reports whether a request was rejected before reaching the store
func IsInvalidInput(err error) bool {
	return CodeOf(err) == CodeInvalidInput
}
