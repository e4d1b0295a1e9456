package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/young-sensey/dochub/internal/client/guard"
	"github.com/young-sensey/dochub/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- stubs ----

type stubTokens struct {
	token string
	ok    bool
}

func (s stubTokens) Token(ctx context.Context) (string, bool) { return s.token, s.ok }

type stubSessions struct {
	clears int
	err    error
}

func (s *stubSessions) Clear(ctx context.Context) error {
	s.clears++
	return s.err
}

type stubNav struct {
	current   string
	redirects []string
}

func (n *stubNav) CurrentPath() string  { return n.current }
func (n *stubNav) Redirect(path string) { n.redirects = append(n.redirects, path); n.current = path }

func respondWith(status int) Doer {
	return DoerFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(""))}, nil
	})
}

// ---- WithBearer ----

func TestWithBearer_NoTokenSendsNoHeader(t *testing.T) {
	var seen *http.Request
	d := Chain(DoerFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(""))}, nil
	}), WithBearer(stubTokens{}))

	req, _ := http.NewRequest(http.MethodGet, "http://x/categories", nil)
	_, err := d.Do(req)
	require.NoError(t, err)
	require.Empty(t, seen.Header.Values("Authorization"))
}

func TestWithBearer_TokenSendsExactlyOneHeader(t *testing.T) {
	var seen *http.Request
	d := Chain(DoerFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(""))}, nil
	}), WithBearer(stubTokens{token: "t1", ok: true}))

	req, _ := http.NewRequest(http.MethodGet, "http://x/categories", nil)
	// a stale header must not survive
	req.Header.Add("Authorization", "Bearer old")
	_, err := d.Do(req)
	require.NoError(t, err)
	require.Equal(t, []string{"Bearer t1"}, seen.Header.Values("Authorization"))
}

// ---- WithAuthRedirect ----

func TestWithAuthRedirect_On401ClearsSessionAndRedirects(t *testing.T) {
	sessions := &stubSessions{}
	nav := &stubNav{current: "/"}
	d := Chain(respondWith(http.StatusUnauthorized), WithAuthRedirect(sessions, nav, discardLogger()))

	req, _ := http.NewRequest(http.MethodGet, "http://x/dock", nil)
	resp, err := d.Do(req)
	require.NoError(t, err)

	// the caller still observes the rejected response
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 1, sessions.clears)
	require.Equal(t, []string{guard.LoginPath}, nav.redirects)
}

func TestWithAuthRedirect_AlreadyOnLoginDoesNotRedirectAgain(t *testing.T) {
	sessions := &stubSessions{}
	nav := &stubNav{current: guard.LoginPath}
	d := Chain(respondWith(http.StatusUnauthorized), WithAuthRedirect(sessions, nav, discardLogger()))

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "http://x/dock", nil)
		_, err := d.Do(req)
		require.NoError(t, err)
	}

	require.Empty(t, nav.redirects)
	// the session is still cleared; clearing is idempotent at the store
	require.Equal(t, 3, sessions.clears)
}

func TestWithAuthRedirect_SuccessPassesThrough(t *testing.T) {
	sessions := &stubSessions{}
	nav := &stubNav{current: "/"}
	d := Chain(respondWith(http.StatusOK), WithAuthRedirect(sessions, nav, discardLogger()))

	req, _ := http.NewRequest(http.MethodGet, "http://x/dock", nil)
	resp, err := d.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Zero(t, sessions.clears)
	require.Empty(t, nav.redirects)
}

func TestWithAuthRedirect_TransportErrorPassesThrough(t *testing.T) {
	sessions := &stubSessions{}
	nav := &stubNav{current: "/"}
	boom := errors.New("conn refused")
	d := Chain(DoerFunc(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	}), WithAuthRedirect(sessions, nav, discardLogger()))

	req, _ := http.NewRequest(http.MethodGet, "http://x/dock", nil)
	_, err := d.Do(req)
	require.ErrorIs(t, err, boom)
	require.Zero(t, sessions.clears)
}

// ---- WithRequestID / Chain ----

func TestWithRequestID_TagsEveryRequest(t *testing.T) {
	ids := map[string]struct{}{}
	d := Chain(DoerFunc(func(req *http.Request) (*http.Response, error) {
		id := req.Header.Get("X-Request-Id")
		require.NotEmpty(t, id)
		ids[id] = struct{}{}
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(""))}, nil
	}), WithRequestID())

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodGet, "http://x/", nil)
		_, err := d.Do(req)
		require.NoError(t, err)
	}
	require.Len(t, ids, 2)
}

func TestChain_OrderIsFirstListedOutermost(t *testing.T) {
	var order []string
	stage := func(name string) Interceptor {
		return func(next Doer) Doer {
			return DoerFunc(func(req *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.Do(req)
			})
		}
	}
	d := Chain(respondWith(200), stage("a"), stage("b"))
	req, _ := http.NewRequest(http.MethodGet, "http://x/", nil)
	_, err := d.Do(req)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, order)
}
