package jwt_test

import (
	"cinema/config"
	"cinema/infras/jwt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method gojwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := gojwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func newService(issuer string) jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret
	cfg.JWT.Issuer = issuer

	return jwt.New(cfg)
}

func validClaims() jwt.Claims {
	now := time.Now()

	return jwt.Claims{
		Role: "staff",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "cinema",
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestValidateToken(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(-time.Minute))

	noRole := validClaims()
	noRole.Role = ""

	tests := []struct {
		name    string
		issuer  string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:  "valid token",
			token: func(t *testing.T) string { return sign(t, gojwt.SigningMethodHS256, []byte(secret), validClaims()) },
		},
		{
			name:   "valid token with matching issuer",
			issuer: "cinema",
			token:  func(t *testing.T) string { return sign(t, gojwt.SigningMethodHS256, []byte(secret), validClaims()) },
		},
		{
			name:    "issuer mismatch",
			issuer:  "someone-else",
			token:   func(t *testing.T) string { return sign(t, gojwt.SigningMethodHS256, []byte(secret), validClaims()) },
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "expired token",
			token:   func(t *testing.T) string { return sign(t, gojwt.SigningMethodHS256, []byte(secret), expired) },
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name:    "wrong secret",
			token:   func(t *testing.T) string { return sign(t, gojwt.SigningMethodHS256, []byte("other"), validClaims()) },
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "unexpected algorithm",
			token:   func(t *testing.T) string { return sign(t, gojwt.SigningMethodHS512, []byte(secret), validClaims()) },
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "missing role",
			token:   func(t *testing.T) string { return sign(t, gojwt.SigningMethodHS256, []byte(secret), noRole) },
			wantErr: jwt.ErrInvalidClaim,
		},
		{
			name:    "garbage",
			token:   func(_ *testing.T) string { return "not-a-token" },
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := newService(tt.issuer).ValidateToken(tt.token(t))

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.Subject)
			assert.Equal(t, "staff", claims.Role)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingHeader)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, jwt.ErrInvalidHeader)

	_, err = jwt.ExtractTokenFromHeader("Bearer ")
	assert.ErrorIs(t, err, jwt.ErrInvalidHeader)
}
