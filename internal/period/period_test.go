package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindows(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		wantStart time.Time
	}{
		{"Daily", Daily, now.AddDate(0, 0, -1)},
		{"Empty Defaults To Daily", "", now.AddDate(0, 0, -1)},
		{"Weekly", Weekly, now.AddDate(0, 0, -7)},
		{"Monthly", Monthly, now.AddDate(0, 0, -30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Resolve(tt.token, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, now, w.End)
		})
	}
}

func TestResolveUnknownToken(t *testing.T) {
	t.Parallel()
	now := time.Now()

	for _, token := range []string{"yearly", "Daily", "WEEKLY", "7d", " daily"} {
		_, err := Resolve(token, now)
		assert.Error(t, err, "token %q must be rejected", token)
	}
}

func TestWindowHalfOpen(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	w, err := Resolve(Weekly, now)
	require.NoError(t, err)

	// Start is inclusive, End is exclusive.
	assert.True(t, w.Contains(w.Start))
	assert.False(t, w.Contains(w.End))
	assert.True(t, w.Contains(w.End.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
}

func TestResolveUsesCallerClock(t *testing.T) {
	t.Parallel()
	then := time.Date(2001, 1, 2, 3, 4, 5, 0, time.UTC)
	w, err := Resolve(Monthly, then)
	require.NoError(t, err)
	assert.Equal(t, then, w.End)
	assert.Equal(t, then.AddDate(0, 0, -30), w.Start)
}
