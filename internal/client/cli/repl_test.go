package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(name, arg string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
	return nil
}

func (f *fakeExec) LoggedIn(ctx context.Context) bool { return f.loggedIn }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", "")
}
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", "") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", "")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami", "") }

func (f *fakeExec) ShowDocuments(ctx context.Context, categoryID string) error {
	return f.record("docs", categoryID)
}
func (f *fakeExec) ShowDocument(ctx context.Context, id string) error { return f.record("doc", id) }
func (f *fakeExec) NewDocument(ctx context.Context) error             { return f.record("newdoc", "") }
func (f *fakeExec) EditDocument(ctx context.Context, id string) error {
	return f.record("editdoc", id)
}
func (f *fakeExec) DeleteDocument(ctx context.Context, id string) error {
	return f.record("deldoc", id)
}
func (f *fakeExec) Download(ctx context.Context, id string) error { return f.record("download", id) }

func (f *fakeExec) ShowCategories(ctx context.Context) error { return f.record("cats", "") }
func (f *fakeExec) ShowCategory(ctx context.Context, id string) error {
	return f.record("cat", id)
}
func (f *fakeExec) NewCategory(ctx context.Context) error { return f.record("newcat", "") }
func (f *fakeExec) EditCategory(ctx context.Context, id string) error {
	return f.record("editcat", id)
}
func (f *fakeExec) DeleteCategory(ctx context.Context, id string) error {
	return f.record("delcat", id)
}

func runWith(t *testing.T, exec *fakeExec, lines ...string) string {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, sc, &out)
	return out.String()
}

func TestRunREPL_DispatchOrder(t *testing.T) {
	exec := &fakeExec{}
	runWith(t, exec,
		"login",
		"docs",
		"docs 7",
		"doc 3",
		"newdoc",
		"editdoc 3",
		"deldoc 3",
		"download 3",
		"cats",
		"cat 2",
		"logout",
		"exit",
	)

	want := []string{"login", "docs", "docs", "doc", "newdoc", "editdoc", "deldoc", "download", "cats", "cat", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, exec.calls[i], want[i])
		}
	}
}

func TestRunREPL_ArgumentsPassedThrough(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runWith(t, exec, "docs null", "doc 42", "delcat 9", "exit")

	wantArgs := []string{"null", "42", "9"}
	if len(exec.args) != len(wantArgs) {
		t.Fatalf("args: got %v", exec.args)
	}
	for i := range wantArgs {
		if exec.args[i] != wantArgs[i] {
			t.Fatalf("arg %d: got %q, want %q", i, exec.args[i], wantArgs[i])
		}
	}
}

func TestRunREPL_Aliases(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runWith(t, exec, "d", "c", "quit")

	want := []string{"docs", "cats"}
	if len(exec.calls) != len(want) || exec.calls[0] != want[0] || exec.calls[1] != want[1] {
		t.Fatalf("calls: got %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_MissingArgumentShowsUsage(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	out := runWith(t, exec, "doc", "exit")

	if len(exec.calls) != 0 {
		t.Fatalf("expected no dispatch, got %v", exec.calls)
	}
	if !strings.Contains(out, "Usage: doc <id>") {
		t.Fatalf("missing usage hint in output:\n%s", out)
	}
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	exec := &fakeExec{}
	out := runWith(t, exec, "frobnicate", "exit")

	if len(exec.calls) != 0 {
		t.Fatalf("expected no dispatch, got %v", exec.calls)
	}
	if !strings.Contains(out, "Unknown command: frobnicate") {
		t.Fatalf("missing unknown-command message:\n%s", out)
	}
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	exec := &fakeExec{}
	out := runWith(t, exec, "help", "login", "help", "exit")

	if !strings.Contains(out, "login, register, exit") {
		t.Fatalf("anonymous help missing:\n%s", out)
	}
	if !strings.Contains(out, "docs [category|null]") {
		t.Fatalf("authenticated help missing:\n%s", out)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	// no exit command: the loop should stop when input runs out
	runWith(t, exec, "whoami")

	if len(exec.calls) != 1 || exec.calls[0] != "whoami" {
		t.Fatalf("calls: got %v", exec.calls)
	}
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	exec := &fakeExec{}
	runWith(t, exec, "", "   ", "whoami", "exit")

	if len(exec.calls) != 1 {
		t.Fatalf("calls: got %v", exec.calls)
	}
}
