package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"RFC3339", "2024-03-05T10:20:30Z", time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC), false},
		{"RFC3339WithOffset", "2024-03-05T12:20:30+02:00", time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC), false},
		{"FractionalSeconds", "2024-03-05T10:20:30.5Z", time.Date(2024, 3, 5, 10, 20, 30, 500000000, time.UTC), false},
		{"DateOnly", "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"Garbage", "yesterday", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestToPtrAndIsTrue(t *testing.T) {
	assert.Equal(t, 5, *ToPtr(5))
	assert.True(t, IsTrue(ToPtr(true)))
	assert.False(t, IsTrue(ToPtr(false)))
	assert.False(t, IsTrue(nil))
}
