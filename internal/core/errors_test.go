// ABOUTME: Tests for memory error codes
// ABOUTME: Verifies classification helpers and that wrapped causes stay reachable
package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harper/vibe-memory/internal/models"
)

func TestErrorCodes(t *testing.T) {
	store := storeError(errStoreDown, "create", "u1")
	assert.True(t, IsStoreFailure(store))
	assert.False(t, IsNotFound(store))
	assert.ErrorIs(t, store, errStoreDown)
	assert.Contains(t, store.Error(), "create")

	missing := notFoundError(fmt.Errorf("%w: m1", models.ErrMemoryNotFound), "u1", "m1")
	assert.True(t, IsNotFound(missing))
	assert.ErrorIs(t, missing, models.ErrMemoryNotFound)

	bad := invalidInput("save", "memory text cannot be empty")
	assert.True(t, IsInvalidInput(bad))
	assert.Equal(t, CodeInvalidInput, CodeOf(bad))
}

func TestCodeOf_PlainErrors(t *testing.T) {
	assert.Equal(t, "", CodeOf(nil))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.False(t, IsStoreFailure(errors.New("plain")))
}
