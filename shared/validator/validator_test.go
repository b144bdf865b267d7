package validator_test

import (
	"net/http"
	"resto/shared/failure"
	"resto/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seatingRequest struct {
	TableName  string `json:"tableName"  validate:"required,notblank,max=50"`
	GuestCount int    `json:"guestCount" validate:"gte=1"`
	Status     string `json:"status"     validate:"omitempty,oneof=empty busy"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        seatingRequest
		expectError bool
		wantField   string
	}{
		{
			name:        "valid struct",
			data:        seatingRequest{TableName: "A1", GuestCount: 2, Status: "busy"},
			expectError: false,
		},
		{
			name:        "missing table name",
			data:        seatingRequest{GuestCount: 2},
			expectError: true,
			wantField:   "tableName",
		},
		{
			name:        "blank table name",
			data:        seatingRequest{TableName: "   ", GuestCount: 2},
			expectError: true,
			wantField:   "tableName",
		},
		{
			name:        "zero guests",
			data:        seatingRequest{TableName: "A1"},
			expectError: true,
			wantField:   "guestCount",
		},
		{
			name:        "invalid status",
			data:        seatingRequest{TableName: "A1", GuestCount: 1, Status: "dirty"},
			expectError: true,
			wantField:   "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

			fields := failure.GetFields(err)
			require.NotEmpty(t, fields)
			assert.Equal(t, tt.wantField, fields[0].Field)
		})
	}
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	err := validator.ValidateStruct(&seatingRequest{})
	require.Error(t, err)

	fields := failure.GetFields(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "tableName is required", fields[0].Message)
	assert.Equal(t, "guestCount must be greater than or equal to 1", fields[1].Message)
	assert.Equal(t, "tableName is required", err.Error())
}

func TestValidateStruct_FallbackMessage(t *testing.T) {
	type contact struct {
		Email string `json:"email" validate:"email"`
	}

	err := validator.ValidateStruct(&contact{Email: "not-an-email"})
	require.Error(t, err)

	fields := failure.GetFields(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "email is invalid", fields[0].Message)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		jsonBody  string
		wantCode  int
		wantField string
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"tableName":"A1","guestCount":3}`,
		},
		{
			name:      "guest count below one",
			jsonBody:  `{"tableName":"A1","guestCount":0}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantField: "guestCount",
		},
		{
			name:      "guest count of wrong type",
			jsonBody:  `{"tableName":"A1","guestCount":"three"}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantField: "guestCount",
		},
		{
			name:      "table name of wrong type",
			jsonBody:  `{"tableName":12,"guestCount":3}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantField: "tableName",
		},
		{
			name:     "malformed JSON",
			jsonBody: `{"tableName":"A1","guestCount":}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "empty JSON",
			jsonBody:  `{}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantField: "tableName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data seatingRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantField != "" {
				fields := failure.GetFields(err)
				require.NotEmpty(t, fields)
				assert.Equal(t, tt.wantField, fields[0].Field)
			}
		})
	}
}
