package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerFixture struct {
	Email           string `validate:"required,email,max=255,nohtml"`
	Password        string `validate:"required,min=6,max=255,nohtml"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		input   registerFixture
		wantMsg string
	}{
		{
			name: "valid input",
			input: registerFixture{
				Email:           "alice@example.com",
				Password:        "secret123",
				ConfirmPassword: "secret123",
			},
			wantMsg: "",
		},
		{
			name: "missing email",
			input: registerFixture{
				Password:        "secret123",
				ConfirmPassword: "secret123",
			},
			wantMsg: "Email: This field is required",
		},
		{
			name: "malformed email",
			input: registerFixture{
				Email:           "not-an-email",
				Password:        "secret123",
				ConfirmPassword: "secret123",
			},
			wantMsg: "Email: Invalid email format",
		},
		{
			name: "password too short",
			input: registerFixture{
				Email:           "alice@example.com",
				Password:        "abc",
				ConfirmPassword: "abc",
			},
			wantMsg: "Password: Minimum length is 6",
		},
		{
			name: "confirm password mismatch",
			input: registerFixture{
				Email:           "alice@example.com",
				Password:        "secret123",
				ConfirmPassword: "different",
			},
			wantMsg: "ConfirmPassword: Must match Password",
		},
		{
			name: "email over length cap",
			input: registerFixture{
				Email:           strings.Repeat("a", 250) + "@example.com",
				Password:        "secret123",
				ConfirmPassword: "secret123",
			},
			wantMsg: "Email: Maximum length is 255",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, ValidateRequest(tt.input))
		})
	}
}

func TestValidateRequest_NoHTML(t *testing.T) {
	type taskFixture struct {
		Task string `validate:"required,max=255,nohtml"`
	}

	tests := []struct {
		name  string
		task  string
		valid bool
	}{
		{name: "plain text", task: "buy milk", valid: true},
		{name: "script tag", task: `<script>alert("x")</script>`, valid: false},
		{name: "anchor tag", task: `<a href="https://example.com">link</a>`, valid: false},
		{name: "image tag", task: `<img src=x onerror=alert(1)>`, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateRequest(taskFixture{Task: tt.task})
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.Equal(t, "Task: Must not contain HTML markup", msg)
			}
		})
	}
}

func TestValidateRequest_FirstFailureOnly(t *testing.T) {
	// Everything is wrong; only the first field's message is reported.
	msg := ValidateRequest(registerFixture{})
	assert.Equal(t, "Email: This field is required", msg)
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(registerFixture{Email: "bad", Password: "x"})
	assert.Len(t, errs, 3)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Minimum length is 6", errs["Password"])
	assert.Equal(t, "This field is required", errs["ConfirmPassword"])
}
