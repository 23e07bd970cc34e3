package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("s3cret")
	require.NotEmpty(t, h)
	require.NotEqual(t, "s3cret", h)

	require.True(t, CheckPassword("s3cret", h))
	require.False(t, CheckPassword("wrong", h))
	require.False(t, CheckPassword("s3cret", "not-a-hash"))
}
