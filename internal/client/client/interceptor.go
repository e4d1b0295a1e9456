package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/young-sensey/dochub/internal/client/guard"
	"github.com/young-sensey/dochub/internal/logging"
)

// Doer performs a single HTTP exchange. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to the Doer interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// Interceptor wraps a Doer with a cross-cutting request/response behavior.
// Each stage is independently testable against a stub Doer.
type Interceptor func(next Doer) Doer

// Chain composes interceptors around base. The first interceptor listed sees
// the request first and the response last.
func Chain(base Doer, interceptors ...Interceptor) Doer {
	d := base
	for i := len(interceptors) - 1; i >= 0; i-- {
		d = interceptors[i](d)
	}
	return d
}

// TokenSource yields the current bearer token, if any.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// WithBearer attaches the current token as a bearer credential on every
// outgoing request, regardless of body encoding. Header.Set guarantees
// exactly one Authorization header; without a token the request goes out
// unmodified.
func WithBearer(tokens TokenSource) Interceptor {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if token, ok := tokens.Token(req.Context()); ok {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			return next.Do(req)
		})
	}
}

// SessionClearer invalidates the stored session.
type SessionClearer interface {
	Clear(ctx context.Context) error
}

// Navigator is the screen-navigation collaborator the transport pushes the
// forced login redirect through.
type Navigator interface {
	CurrentPath() string
	Redirect(path string)
}

// WithAuthRedirect reacts to HTTP 401 on any endpoint: the session is cleared
// and, unless the navigator is already on the login screen, navigation is
// forced there. Skipping the redirect while on the login screen keeps
// repeated 401s from looping. The 401 response still flows back to the
// caller; the redirect is layered on top of normal error propagation.
func WithAuthRedirect(sessions SessionClearer, nav Navigator, log logging.Logger) Interceptor {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.Do(req)
			if err != nil || resp.StatusCode != http.StatusUnauthorized {
				return resp, err
			}

			ctx := req.Context()
			if cerr := sessions.Clear(ctx); cerr != nil {
				log.Warn(ctx, "failed to clear session after 401", "error", cerr)
			}
			if nav.CurrentPath() != guard.LoginPath {
				log.Info(ctx, "authorization rejected, redirecting to login", "path", req.URL.Path)
				nav.Redirect(guard.LoginPath)
			}
			return resp, err
		})
	}
}

// WithRequestID tags every request with an X-Request-Id for server-side
// correlation.
func WithRequestID() Interceptor {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			req.Header.Set("X-Request-Id", uuid.NewString())
			return next.Do(req)
		})
	}
}
