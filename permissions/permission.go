package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route. Skip opens the route to anyone.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

func normalizePath(path string) string {
	if len(path) > 1 {
		return strings.TrimRight(path, "/")
	}

	return path
}

// FindPermissions returns the rule for path and method, or the zero Permission when none matches.
// A trailing slash and the method's case are ignored.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	path = normalizePath(path)
	method = strings.ToUpper(method)

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Allows reports whether role may call the route. Routes without a rule are allowed.
func (r *PermissionData) Allows(path, method, role string) bool {
	permission := r.FindPermissions(path, method)

	return r.Skip || permission.Skip || len(permission.Permissions) == 0 || slices.Contains(permission.Permissions, role)
}

func parse(raw []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(raw, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	seen := map[string]bool{}

	for i, endpoint := range permissions.Endpoints {
		endpoint.Path = normalizePath(endpoint.Path)
		endpoint.Method = strings.ToUpper(endpoint.Method)

		if !strings.HasPrefix(endpoint.Path, "/") || endpoint.Method == "" {
			return nil, fmt.Errorf("invalid permission entry %d: %q %q", i, endpoint.Method, endpoint.Path)
		}

		key := endpoint.Method + " " + endpoint.Path
		if seen[key] {
			return nil, fmt.Errorf("duplicate permission entry: %s", key)
		}

		seen[key] = true
		permissions.Endpoints[i] = endpoint
	}

	return &permissions, nil
}

// Get loads the embedded permissions. It returns nil when the file is invalid, which makes RBAC deny every guarded route.
func Get() *PermissionData {
	permissions, err := parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
