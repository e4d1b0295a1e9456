package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/young-sensey/dochub/internal/client/client"
	"github.com/young-sensey/dochub/internal/client/config"
	"github.com/young-sensey/dochub/internal/client/guard"
	"github.com/young-sensey/dochub/internal/client/models"
	"github.com/young-sensey/dochub/internal/client/services"
	"github.com/young-sensey/dochub/internal/client/session"
	"github.com/young-sensey/dochub/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the terminal client. It plays the router's role: it tracks the
// current path, runs every navigation through the guard, and satisfies the
// transport's Navigator so a 401 can force it onto the login screen.
type App struct {
	config   *config.Config
	log      logging.Logger
	sessions *session.Store
	api      client.Client
	auth     services.AuthService
	reader   *bufio.Reader
	out      io.Writer

	mu      sync.Mutex
	current string
	pending string // post-login return path

	// controllers of the currently mounted list screen, nil when not on one
	docCtrl   *services.Controller[models.Document, models.DocumentFields]
	docFilter client.ListFilter
	catCtrl   *services.Controller[models.Category, models.CategoryFields]
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.OpenDB(ctx, cfg.SessionDB)
	if err != nil {
		log.Error(ctx, "session database unavailable", "error", err)
		return nil, err
	}

	sessions := session.NewStore(db, log)

	a := &App{
		config:   cfg,
		log:      log,
		sessions: sessions,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		current:  "/",
	}

	api, err := client.NewHTTPClient(cfg.BaseURL, &http.Client{Timeout: cfg.RequestTimeout}, log,
		client.WithRequestID(),
		client.WithBearer(sessions),
		client.WithAuthRedirect(sessions, a, log),
	)
	if err != nil {
		return nil, err
	}

	a.api = api
	a.auth = services.NewAuthService(api, sessions)
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to DocHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

// CurrentPath implements client.Navigator.
func (a *App) CurrentPath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Redirect implements client.Navigator: the transport lands here on a 401.
// The current screen unmounts and the app sits on the login screen.
func (a *App) Redirect(path string) {
	a.mu.Lock()
	a.current = path
	a.mu.Unlock()
	a.closeScreens()
	fmt.Fprintln(a.out, "Session expired, please log in again.")
}

func (a *App) LoggedIn(ctx context.Context) bool {
	return a.sessions.LoggedIn(ctx)
}

// navigate runs the guard against the requested path. The guard is consulted
// on every attempt, so a session cleared mid-flight is picked up immediately.
// Any navigation unmounts the previous screen.
func (a *App) navigate(ctx context.Context, path string) bool {
	a.closeScreens()

	d := guard.Evaluate(a.sessions.LoggedIn(ctx), path)
	a.mu.Lock()
	defer a.mu.Unlock()
	if !d.Allow {
		a.current = d.RedirectTo
		a.pending = d.From
		fmt.Fprintln(a.out, "Please log in first (command: login).")
		return false
	}
	a.current = path
	return true
}

// closeScreens unmounts any mounted list screen: controllers are closed so
// pending banner timers die and in-flight results are discarded.
func (a *App) closeScreens() {
	a.mu.Lock()
	docCtrl, catCtrl := a.docCtrl, a.catCtrl
	a.docCtrl, a.catCtrl = nil, nil
	a.mu.Unlock()

	if docCtrl != nil {
		docCtrl.Close()
	}
	if catCtrl != nil {
		catCtrl.Close()
	}
}

// takePending pops the remembered post-login return path.
func (a *App) takePending() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := a.pending
	a.pending = ""
	return p
}

func (a *App) getStatus() string {
	u, ok := a.sessions.User(context.Background())
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Login)
}
