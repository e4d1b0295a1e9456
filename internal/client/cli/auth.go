package cli

import (
	"context"
	"fmt"

	"github.com/young-sensey/dochub/internal/client/guard"
)

// Login authenticates and, on success, continues to the originally requested
// screen if the guard remembered one, or to the document list.
func (a *App) Login(ctx context.Context) error {
	if !a.navigate(ctx, guard.LoginPath) {
		return nil
	}

	login, err := GetSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	user, err := a.auth.Login(ctx, login, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Login)

	next := a.takePending()
	if next == "" || next == guard.LoginPath {
		next = "/"
	}
	if next == "/" {
		return a.ShowDocuments(ctx, "")
	}
	a.mu.Lock()
	a.current = next
	a.mu.Unlock()
	return nil
}

func (a *App) Register(ctx context.Context) error {
	if !a.navigate(ctx, guard.RegisterPath) {
		return nil
	}

	login, err := GetSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.auth.Register(ctx, login, password); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Registered. Now log in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.closeScreens()
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	a.mu.Lock()
	a.current = guard.LoginPath
	a.mu.Unlock()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.sessions.User(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintln(a.out, u.Login)
	return nil
}
