package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	got, ok := parseClock(" 07:30 ")
	require.True(t, ok)
	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, 30, got.Minute())

	for _, bad := range []string{"", "7.30", "25:00", "07:61", "pagi"} {
		_, ok := parseClock(bad)
		assert.False(t, ok, "harus gagal: %q", bad)
	}
}
