package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("failed to save ticket: %w", Internal("DATABASE_ERROR", "could not save", cause))

	assert.Equal(t, "DATABASE_ERROR", CodeOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, KindInternal, appErr.Kind)
}

func TestKinds(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("TRIP_NOT_FOUND", "trip not found")))
	assert.False(t, IsNotFound(Validation("NO_SEATS", "no seats")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "NO_SEATS: no seats", Validation("NO_SEATS", "no seats").Error())
}
