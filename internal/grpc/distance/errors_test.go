package distance

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		code     codes.Code
		wantKind ErrorKind
	}{
		{"unavailable maps to unavailable", codes.Unavailable, KindUnavailable},
		{"invalid argument maps to validation", codes.InvalidArgument, KindValidation},
		{"not found maps to validation", codes.NotFound, KindValidation},
		{"internal maps to internal", codes.Internal, KindInternal},
		{"deadline exceeded maps to internal", codes.DeadlineExceeded, KindInternal},
		{"unknown maps to internal", codes.Unknown, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError("localhost:50051", status.Error(tt.code, "boom"))

			var de *Error
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.wantKind, de.Kind)
			assert.NotEmpty(t, de.Message)
		})
	}
}

func TestTranslateErrorWrapsCause(t *testing.T) {
	cause := status.Error(codes.Unavailable, "connection refused")
	err := translateError("localhost:50051", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "localhost:50051")
}

func TestTranslateErrorNonStatus(t *testing.T) {
	err := translateError("localhost:50051", fmt.Errorf("plain failure"))

	de, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindInternal, de.Kind)
}

func TestKindPredicates(t *testing.T) {
	unavailable := &Error{Kind: KindUnavailable, Message: "down"}
	validation := &Error{Kind: KindValidation, Message: "bad input"}

	assert.True(t, IsUnavailable(unavailable))
	assert.False(t, IsUnavailable(validation))
	assert.True(t, IsValidation(validation))
	assert.False(t, IsValidation(unavailable))
	assert.False(t, IsUnavailable(errors.New("plain")))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "unavailable", KindUnavailable.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "internal", KindInternal.String())
}
