package permissions_test

import (
	"resto/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "assign requires staff", path: "/api/assign-table", method: "POST", wantRoles: []string{"admin", "staff"}},
		{name: "release requires staff", path: "/api/release-table", method: "POST", wantRoles: []string{"admin", "staff"}},
		{name: "counts are public", path: "/api/all-table-counts", method: "GET", wantSkip: true},
		{name: "method mismatch", path: "/api/assign-table", method: "GET"},
		{name: "unknown path", path: "/api/unknown", method: "POST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRoles, permission.Permissions)
		})
	}
}

func TestFindPermissions_Normalized(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	permission := data.FindPermissions("/api/assign-table/", "post")

	assert.Equal(t, []string{"admin", "staff"}, permission.Permissions)
}

func TestAllows(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.True(t, data.Allows("/api/assign-table", "POST", "staff"))
	assert.False(t, data.Allows("/api/assign-table", "POST", "viewer"))
	assert.True(t, data.Allows("/api/empty-tables", "GET", ""))
	assert.True(t, data.Allows("/api/unknown", "GET", "viewer"))
}
