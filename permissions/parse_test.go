package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "valid", raw: `{"endpoints":[{"path":"/api/x/","method":"post","permissions":["admin"]}]}`},
		{name: "malformed", raw: `{"endpoints":`, wantErr: "failed to decode"},
		{name: "relative path", raw: `{"endpoints":[{"path":"api/x","method":"GET"}]}`, wantErr: "invalid permission entry"},
		{name: "missing method", raw: `{"endpoints":[{"path":"/api/x"}]}`, wantErr: "invalid permission entry"},
		{
			name:    "duplicate",
			raw:     `{"endpoints":[{"path":"/api/x","method":"GET"},{"path":"/api/x/","method":"get"}]}`,
			wantErr: "duplicate permission entry: GET /api/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := parse([]byte(tt.raw))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "/api/x", data.Endpoints[0].Path)
			assert.Equal(t, "POST", data.Endpoints[0].Method)
		})
	}
}
