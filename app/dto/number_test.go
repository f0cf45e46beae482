package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    float64
		present bool
		wantErr bool
	}{
		{"JSONNumber", `{"score":72.5}`, 72.5, true, false},
		{"NumericString", `{"score":"72"}`, 72, true, false},
		{"PaddedString", `{"score":" 1500 "}`, 1500, true, false},
		{"EmptyString", `{"score":""}`, 0, false, false},
		{"Word", `{"score":"high"}`, 0, true, true},
		{"NaN", `{"score":"NaN"}`, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateLeadRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			require.NotNil(t, req.Score)

			got, ok, err := req.Score.Float64()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("NullLeavesNil", func(t *testing.T) {
		var req CreateLeadRequest
		require.NoError(t, json.Unmarshal([]byte(`{"score":null}`), &req))
		assert.Nil(t, req.Score)
	})

	t.Run("BoolIsRejected", func(t *testing.T) {
		var req CreateLeadRequest
		assert.Error(t, json.Unmarshal([]byte(`{"score":true}`), &req))
	})
}

func TestEditProfileRequestNormalize(t *testing.T) {
	first, email, password := "  Ada ", "   ", ""
	req := EditProfileRequest{FirstName: &first, Email: &email, Password: &password}
	req.Normalize()

	require.NotNil(t, req.FirstName)
	assert.Equal(t, "Ada", *req.FirstName)
	assert.Nil(t, req.LastName)
	assert.Nil(t, req.Email)
	assert.Nil(t, req.Password)

	spaced := " pass word "
	req = EditProfileRequest{Password: &spaced}
	req.Normalize()
	assert.Equal(t, " pass word ", *req.Password)
}
