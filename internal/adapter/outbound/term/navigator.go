// Package term adapts navigation to a terminal session. A CLI has no
// router to redirect, so "redirect to login" means telling the user to
// run the login command and remembering where they were headed.
package term

import (
	"fmt"
	"io"
	"sync"

	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

// Navigator tracks the logical path of the current command and renders
// auth-failure redirects as instructions on the output stream.
type Navigator struct {
	out       io.Writer
	loginPath string

	mu       sync.Mutex
	path     string
	returnTo string
}

// NewNavigator creates a navigator writing to out.
func NewNavigator(out io.Writer, loginPath string) *Navigator {
	return &Navigator{out: out, loginPath: loginPath, path: "/"}
}

// Enter records the logical path of the command being executed.
func (n *Navigator) Enter(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = path
}

// CurrentPath returns the logical path of the running command.
func (n *Navigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

// RedirectToLogin records where the user was interrupted and prints the
// re-login instruction.
func (n *Navigator) RedirectToLogin(from, reason string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.returnTo = from
	n.path = n.loginPath
	if reason == outbound.ReasonUnauthenticated {
		fmt.Fprintln(n.out, "Not logged in. Run `mallctl login` first.")
		return
	}
	fmt.Fprintf(n.out, "Session expired (%s). Run `mallctl login` and retry.\n", reason)
}

// ReturnTo reports the path interrupted by the last redirect, empty when
// none happened.
func (n *Navigator) ReturnTo() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.returnTo
}
