package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/dmitrijs2005/swingnotes/internal/server/auth"
)

const (
	MsgMissingToken = "authentication required"
	MsgInvalidToken = "invalid or expired token"
)

// TokenVerifier checks a bearer token. *auth.Issuer satisfies it.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity attached by BearerAuth.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(auth.Identity)
	return id, ok
}

type bearerAuth struct {
	verifier TokenVerifier
}

// BearerAuth accepts only "Authorization: Bearer <token>". Every failure is
// a 401.
func BearerAuth(v TokenVerifier) Stage {
	return bearerAuth{verifier: v}
}

func (bearerAuth) Name() string { return "bearer_auth" }

func (b bearerAuth) Check(r *http.Request) Outcome {
	header := r.Header.Get(common.AuthorizationHeaderName)
	if header == "" {
		return Reject(http.StatusUnauthorized, MsgMissingToken)
	}

	token, ok := bearerToken(header)
	if !ok {
		return Reject(http.StatusUnauthorized, MsgInvalidToken)
	}

	id, err := b.verifier.Verify(token)
	if err != nil {
		return Reject(http.StatusUnauthorized, MsgInvalidToken)
	}

	return Pass(WithIdentity(r.Context(), id))
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
