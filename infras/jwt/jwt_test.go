package jwt_test

import (
	"resto/config"
	"resto/infras/jwt"
	"testing"

	jwtGo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string, expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "resto"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.New(newConfig("secret", 60))

	token, err := svc.GenerateAccessToken("user-1", "staff")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, "resto", claims.Issuer)
	assert.Equal(t, claims.ID, claims.TokenID)
	assert.NotEmpty(t, claims.TokenID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := jwt.New(newConfig("secret", 60)).GenerateAccessToken("user-1", "staff")
	require.NoError(t, err)

	_, err = jwt.New(newConfig("other", 60)).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := jwt.New(newConfig("secret", -5))

	token, err := svc.GenerateAccessToken("user-1", "staff")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	other := newConfig("secret", 60)
	other.JWT.Issuer = "someone-else"

	token, err := jwt.New(other).GenerateAccessToken("user-1", "staff")
	require.NoError(t, err)

	_, err = jwt.New(newConfig("secret", 60)).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_MissingRole(t *testing.T) {
	claims := jwt.Claims{
		UserID: "user-1",
		RegisteredClaims: jwtGo.RegisteredClaims{
			Issuer: "resto",
		},
	}

	token, err := jwtGo.NewWithClaims(jwtGo.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = jwt.New(newConfig("secret", 60)).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := jwt.New(newConfig("secret", 60)).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def", want: "abc.def"},
		{name: "empty header", header: "", wantErr: jwt.ErrMissingHeader},
		{name: "basic scheme", header: "Basic abc", wantErr: jwt.ErrInvalidHeader},
		{name: "prefix only", header: "Bearer ", wantErr: jwt.ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
