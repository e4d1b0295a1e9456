// Package guard decides whether a screen may render for the current session.
// The decision is a pure function of (logged-in, requested path) and is
// re-evaluated on every navigation, so a session cleared mid-flight takes
// effect on the next navigation without a reload.
package guard

// LoginPath is where unauthenticated navigation is redirected.
const LoginPath = "/login"

// RegisterPath is reachable without a session.
const RegisterPath = "/register"

// Decision is the outcome of evaluating a navigation attempt.
type Decision struct {
	// Allow is true when the requested screen may render.
	Allow bool
	// RedirectTo is set when Allow is false.
	RedirectTo string
	// From carries the originally requested path so the login screen can
	// return there after a successful login.
	From string
}

// Evaluate gates the requested path. Only token presence matters; token
// validity is the server's business and shows up as a 401 at request time.
func Evaluate(loggedIn bool, path string) Decision {
	if isPublic(path) || loggedIn {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: LoginPath, From: path}
}

func isPublic(path string) bool {
	return path == LoginPath || path == RegisterPath
}
