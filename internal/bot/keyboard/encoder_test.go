package keyboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCallback(t *testing.T) {
	tests := []struct {
		name      string
		unique    string
		data      string
		want      string
		wantError bool
	}{
		{
			name:   "with data",
			unique: "setstyle",
			data:   "3",
			want:   "setstyle:3",
		},
		{
			name:   "without data",
			unique: "noop",
			data:   "",
			want:   "noop",
		},
		{
			name:      "over limit",
			unique:    "setmodel",
			data:      strings.Repeat("x", 80),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeCallback(tt.unique, tt.data)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeCallback(t *testing.T) {
	unique, data, err := DecodeCallback("setstyle:12")
	require.NoError(t, err)
	assert.Equal(t, "setstyle", unique)
	assert.Equal(t, "12", data)

	unique, data, err = DecodeCallback("gate:recheck")
	require.NoError(t, err)
	assert.Equal(t, "gate", unique)
	assert.Equal(t, "recheck", data)

	unique, data, err = DecodeCallback("noop")
	require.NoError(t, err)
	assert.Equal(t, "noop", unique)
	assert.Empty(t, data)

	_, _, err = DecodeCallback("")
	require.Error(t, err)
}
