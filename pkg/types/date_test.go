package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_ScanValue(t *testing.T) {
	want := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, want, d.Time)

	require.NoError(t, d.Scan("2024-06-03"))
	assert.Equal(t, want, d.Time)

	require.NoError(t, d.Scan([]byte("2024-06-03T00:00:00Z")))
	assert.Equal(t, want, d.Time)

	assert.Error(t, d.Scan("June 3rd"))
	assert.Error(t, d.Scan(3))

	v, err := NewDate(time.Date(2024, 6, 3, 23, 59, 0, 0, time.UTC)).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
