package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternal_KeepsRawMessage(t *testing.T) {
	err := Internal(errors.New(`invalid input syntax for type integer: "abc"`))

	assert.Equal(t, http.StatusInternalServerError, err.GetStatus())

	b, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"error":"invalid input syntax for type integer: \"abc\""}`, string(b))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		msg     string
		errs    []error
		wantMsg string
	}{
		{
			name:    "message only",
			status:  http.StatusNotFound,
			msg:     "Not Found",
			wantMsg: "Not Found",
		},
		{
			name:    "details are appended",
			status:  http.StatusBadRequest,
			msg:     "unable to parse body",
			errs:    []error{errors.New("unexpected EOF"), nil, errors.New("bad token")},
			wantMsg: "unable to parse body: unexpected EOF; bad token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := New(tt.status, tt.msg, tt.errs...)
			assert.Equal(t, tt.status, se.GetStatus())
			assert.Equal(t, tt.wantMsg, se.Error())
		})
	}
}
