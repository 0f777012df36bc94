package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"usersapi/internal/app/server/api/http/httperr"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus string
		expectedCode   int
	}{
		{
			name:           "health check returns OK",
			expectedStatus: "OK",
		},
		{
			name:         "database down returns 503",
			pingErr:      errors.New("dial tcp: connection refused"),
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db := pingerFunc(func(context.Context) error { return tt.pingErr })
			handler := NewHandler(db, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			if tt.pingErr != nil {
				var he *httperr.Error
				require.ErrorAs(t, err, &he)
				assert.Equal(t, tt.expectedCode, he.GetStatus())
				assert.Equal(t, tt.pingErr.Error(), he.Message)
				assert.Nil(t, output)
				return
			}

			assert.NoError(t, err)
			require.NotNil(t, output)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
			assert.Equal(t, "up", output.Body.Database)
		})
	}
}

func TestNewHandler(t *testing.T) {
	// Arrange
	log := slog.Default()
	middleware := huma.Middlewares{}

	// Act
	handler := NewHandler(pingerFunc(func(context.Context) error { return nil }), log, middleware)

	// Assert
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
