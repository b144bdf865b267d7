package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"resto/config"
	"resto/infras/jwt"
	"resto/infras/otel"
	"resto/permissions"
	"resto/shared/constant"
	"resto/shared/failure"
	"resto/transport/http/response"

	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func (m *authRoleImpl) bypass(request *http.Request) bool {
	if !m.cfg.App.Auth.Enable {
		return true
	}

	skip, _ := request.Context().Value(skipAuth).(bool)

	return skip
}

func (m *authRoleImpl) findPermission(request *http.Request) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	return m.permission.FindPermissions(request.URL.Path, request.Method)
}

// Auth validates the bearer token and stores its claims on the request context.
// It is a pass-through when auth is disabled, the route is marked skip, or a valid API key was presented.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		if m.bypass(request) || m.findPermission(request).Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		reject := func(message string) {
			err := failure.Unauthorized(message)
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			reject("Missing authorization header")

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject("Invalid authorization header format")

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				reject("Token has expired")
			case errors.Is(err, jwt.ErrInvalidClaim):
				reject("Invalid token claims")
			case errors.Is(err, jwt.ErrInvalidToken):
				reject("Invalid token")
			default:
				log.Error().Err(err).Msg("token validation failed")
				reject("Token validation failed")
			}

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the role set by Auth against the roles allowed for the route.
// Routes without a rule are open to any authenticated caller.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")

		if m.bypass(request) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		userRole, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

		if !m.permission.Allows(request.URL.Path, request.Method, userRole) {
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": m.findPermission(request).Permissions,
				"reason":        "role_not_allowed",
			})
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal callers skip Auth and RBAC with the configured X-API-Key.
// A wrong key is rejected, no key falls through to the regular checks.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" || m.cfg.App.APIKey == "" {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if !validAPIKey(apiKey, m.cfg.App.APIKey) {
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		ctx = context.WithValue(ctx, skipAuth, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextInternal)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func validAPIKey(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
