package health

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name            string
		store           Pinger
		expectedStorage string
	}{
		{
			name:            "no store configured",
			store:           nil,
			expectedStorage: "OK",
		},
		{
			name:            "store reachable",
			store:           pingerFunc(func(context.Context) error { return nil }),
			expectedStorage: "OK",
		},
		{
			name:            "store down",
			store:           pingerFunc(func(context.Context) error { return errors.New("unable to open database file") }),
			expectedStorage: "UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := NewHandler(tt.store, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), nil)

			// Assert
			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, "OK", output.Body.Status)
			assert.Equal(t, tt.expectedStorage, output.Body.Storage)
		})
	}
}

func TestNewHandler(t *testing.T) {
	// Arrange
	log := slog.Default()
	middleware := huma.Middlewares{}

	// Act
	handler := NewHandler(nil, log, middleware)

	// Assert
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
