package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateYYYYMMDD(t *testing.T) {
	got, ok := ParseDateYYYYMMDD(" 2024-09-04 ")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 9, 4, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "04-09-2024", "2024-13-01", "2024-02-30", "besok"} {
		_, ok := ParseDateYYYYMMDD(bad)
		assert.False(t, ok, "harus gagal: %q", bad)
	}
}
