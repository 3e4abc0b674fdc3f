package pure

import (
	"errors"
	"testing"
	"time"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRegisterUser_EmptyUsername(t *testing.T) {
	user, err := RegisterUser("")
	require.Error(t, err)
	assert.Nil(t, user)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "username", verr.Field)
	assert.Equal(t, "Username is required.", verr.Message)
}

func TestRegisterUser_ValidationErrorStatus(t *testing.T) {
	_, err := RegisterUser("")
	require.Error(t, err)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Contains(t, st.Message(), "username")
}

func TestRegisterUser(t *testing.T) {
	result, err := RegisterUser("Santiago")
	require.NoError(t, err)

	assert.Equal(t, "Santiago", result.Username)
	// The id comes from the wall clock, only its sign is stable.
	assert.Greater(t, result.ID, int64(0))
}

func TestRegisterUser_IDFromClock(t *testing.T) {
	fixed := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	patches := gomonkey.ApplyFuncVar(&now, func() time.Time { return fixed })
	defer patches.Reset()

	result, err := RegisterUser("alice")
	require.NoError(t, err)
	assert.Equal(t, fixed.UnixMilli(), result.ID)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "order", Message: "order is required"}
	assert.EqualError(t, err, "invalid order: order is required")
}
