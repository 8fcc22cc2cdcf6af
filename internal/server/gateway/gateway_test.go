package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/swingnotes/internal/logging"
	"github.com/dmitrijs2005/swingnotes/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcStage struct {
	name string
	fn   func(r *http.Request) Outcome
}

func (f funcStage) Name() string                  { return f.name }
func (f funcStage) Check(r *http.Request) Outcome { return f.fn(r) }

func protected(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		id, ok := IdentityFromContext(r.Context())
		if ok {
			_, _ = w.Write([]byte(id.UserID))
		}
	})
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Message
}

func TestPipeline_StopsAtFirstRejection(t *testing.T) {
	var order []string
	stage := func(name string, out func(r *http.Request) Outcome) Stage {
		return funcStage{name: name, fn: func(r *http.Request) Outcome {
			order = append(order, name)
			return out(r)
		}}
	}

	p := NewPipeline(logging.Nop(),
		stage("first", func(r *http.Request) Outcome { return Pass(r.Context()) }),
		stage("second", func(*http.Request) Outcome { return Reject(http.StatusForbidden, "nope") }),
		stage("third", func(r *http.Request) Outcome { return Pass(r.Context()) }),
	)

	called := false
	rr := httptest.NewRecorder()
	p.Wrap(protected(t, &called)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notes", nil))

	assert.False(t, called)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "nope", decodeMessage(t, rr))
}

func TestPipeline_NoStagesCallsHandler(t *testing.T) {
	called := false
	rr := httptest.NewRecorder()
	NewPipeline(logging.Nop()).Wrap(protected(t, &called)).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBearerAuth(t *testing.T) {
	issuer := auth.NewIssuer([]byte("secret"), time.Hour)
	good, err := issuer.Issue("user-1", "alice")
	require.NoError(t, err)

	expiredIssuer := auth.NewIssuer([]byte("secret"), time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expired, err := expiredIssuer.Issue("user-1", "alice")
	require.NoError(t, err)

	foreign, err := auth.NewIssuer([]byte("other"), time.Hour).Issue("user-1", "alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		custom  string
		wantOK  bool
		wantMsg string
	}{
		{name: "valid", header: "Bearer " + good, wantOK: true},
		{name: "lowercase scheme", header: "bearer " + good, wantOK: true},
		{name: "missing", wantMsg: MsgMissingToken},
		{name: "x-auth-token is ignored", custom: good, wantMsg: MsgMissingToken},
		{name: "no scheme", header: good, wantMsg: MsgInvalidToken},
		{name: "basic scheme", header: "Basic " + good, wantMsg: MsgInvalidToken},
		{name: "empty token", header: "Bearer   ", wantMsg: MsgInvalidToken},
		{name: "garbage", header: "Bearer abc.def", wantMsg: MsgInvalidToken},
		{name: "expired", header: "Bearer " + expired, wantMsg: MsgInvalidToken},
		{name: "wrong key", header: "Bearer " + foreign, wantMsg: MsgInvalidToken},
	}

	p := NewPipeline(logging.Nop(), BearerAuth(issuer))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.custom != "" {
				req.Header.Set("x-auth-token", tt.custom)
			}

			called := false
			rr := httptest.NewRecorder()
			p.Wrap(protected(t, &called)).ServeHTTP(rr, req)

			if tt.wantOK {
				assert.True(t, called)
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Equal(t, "user-1", rr.Body.String())
				return
			}
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
			assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestIdentityFromContext_Absent(t *testing.T) {
	_, ok := IdentityFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
