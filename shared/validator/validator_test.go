package validator_test

import (
	"cinema/shared/failure"
	"cinema/shared/validator"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movieLike struct {
	Title    string `json:"title"            validate:"required,max=100"`
	Duration int    `json:"duration_minutes" validate:"required,min=10,max=500"`
}

type reservationLike struct {
	ScreeningID string `json:"screening_id" validate:"required,uuid"`
	SeatID      string `json:"seat_id"      validate:"required,seat_id"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *movieLike
		expectError bool
		field       string
	}{
		{
			name:        "valid struct",
			data:        &movieLike{Title: "Harry Potter", Duration: 125},
			expectError: false,
		},
		{
			name:        "missing title",
			data:        &movieLike{Duration: 125},
			expectError: true,
			field:       "title",
		},
		{
			name:        "duration too short",
			data:        &movieLike{Title: "Short", Duration: 9},
			expectError: true,
			field:       "duration_minutes",
		},
		{
			name:        "duration too long",
			data:        &movieLike{Title: "Long", Duration: 501},
			expectError: true,
			field:       "duration_minutes",
		},
		{
			name:        "title too long",
			data:        &movieLike{Title: strings.Repeat("a", 101), Duration: 100},
			expectError: true,
			field:       "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.field, failure.GetField(err))
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestSeatIDValidation(t *testing.T) {
	tests := []struct {
		name        string
		seatID      string
		expectError bool
	}{
		{name: "valid seat id", seatID: "5f0c7c1e-8a8d-4f4e-9d47-0c7c1e8a8d4f:0:9", expectError: false},
		{name: "missing number", seatID: "5f0c7c1e-8a8d-4f4e-9d47-0c7c1e8a8d4f:0", expectError: true},
		{name: "negative row", seatID: "5f0c7c1e-8a8d-4f4e-9d47-0c7c1e8a8d4f:-1:2", expectError: true},
		{name: "room is not a uuid", seatID: "room:1:2", expectError: true},
		{name: "non numeric number", seatID: "5f0c7c1e-8a8d-4f4e-9d47-0c7c1e8a8d4f:1:b", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&reservationLike{
				ScreeningID: "0b6e0d2e-52a4-4f3a-9a4f-2b0f3a8c1d11",
				SeatID:      tt.seatID,
			})

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, "seat_id", failure.GetField(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type posterLike struct {
	Poster *multipart.FileHeader `json:"poster" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=2"`
}

func TestPosterValidation(t *testing.T) {
	header := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "poster",
			Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
			Size:     size,
		}
	}

	tests := []struct {
		name        string
		poster      *multipart.FileHeader
		expectError bool
	}{
		{name: "png within limit", poster: header("image/png", 1024), expectError: false},
		{name: "jpeg at limit", poster: header("image/jpeg", 2*1024*1024), expectError: false},
		{name: "gif is rejected", poster: header("image/gif", 1024), expectError: true},
		{name: "too large", poster: header("image/png", 2*1024*1024+1), expectError: true},
		{name: "missing", poster: nil, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&posterLike{Poster: tt.poster})

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, "poster", failure.GetField(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid number in range", field: 25, tag: "gte=0,lte=100", expectError: false},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
		{name: "valid uuid", field: "0b6e0d2e-52a4-4f3a-9a4f-2b0f3a8c1d11", tag: "uuid", expectError: false},
		{name: "invalid uuid", field: "nope", tag: "uuid", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"title":"Harry Potter","duration_minutes":125}`,
			expectError: false,
		},
		{
			name:        "rule violation",
			jsonBody:    `{"title":"Harry Potter","duration_minutes":5}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"title":"Harry Potter","duration_minutes":}`,
			expectError: true,
		},
		{
			name:        "unknown field",
			jsonBody:    `{"title":"Harry Potter","duration_minutes":125,"rating":5}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data movieLike
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	err := validator.ValidateStruct(&movieLike{Title: "Short", Duration: 1})
	require.Error(t, err)

	assert.Equal(t, "duration_minutes must be greater than or equal to 10", err.Error())
}
