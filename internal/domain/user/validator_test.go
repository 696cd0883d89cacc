package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicValidator_ValidateRegister(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name        string
		username    string
		password    string
		enrollment  string
		wantErr     bool
		expectedErr string
	}{
		{name: "valid", username: "adv1", password: "secret", enrollment: "BAR123"},
		{name: "short password allowed", username: "adv1", password: "a"},
		{name: "empty username", username: "", password: "secret", wantErr: true, expectedErr: "username must not be empty"},
		{name: "empty password", username: "adv1", password: "", wantErr: true, expectedErr: "password must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateRegister(tt.username, tt.password, tt.enrollment)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
