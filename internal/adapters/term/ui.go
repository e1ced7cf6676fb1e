// Package term renders the pages on a line-mode terminal. It owns no
// business logic: every decision is delegated to the page controllers.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/usecase"
)

type UI struct {
	app *usecase.App
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func New(app *usecase.App, in io.Reader, out io.Writer) *UI {
	return &UI{app: app, in: bufio.NewScanner(in), out: out}
}

// Run mounts exactly one page at a time and loops until the user quits,
// the input closes, or the context is cancelled.
func (u *UI) Run(ctx context.Context) error {
	u.app.Start()
	for !u.eof {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch u.app.Page() {
		case domain.PageWelcome:
			if quit := u.welcome(); quit {
				return nil
			}
		case domain.PageLogin:
			u.login(ctx)
		case domain.PageRegister:
			u.register(ctx)
		case domain.PageDashboard:
			u.dashboard(ctx)
		case domain.PageSendMoney:
			u.sendMoney(ctx)
		case domain.PageTransactions:
			u.history(ctx)
		case domain.PageAdmin:
			u.admin()
		case domain.PageAdminDashboard:
			u.adminDashboard(ctx)
		}
	}
	return nil
}

// prompt reads one trimmed line; a closed input stream ends the run loop.
func (u *UI) prompt(label string) string {
	fmt.Fprintf(u.out, "%s: ", label)
	if !u.in.Scan() {
		u.eof = true
		return ""
	}
	return strings.TrimSpace(u.in.Text())
}

func (u *UI) header(title, subtitle string) {
	fmt.Fprintf(u.out, "\n== %s ==\n", title)
	if subtitle != "" {
		fmt.Fprintln(u.out, subtitle)
	}
}

func (u *UI) alert(a *usecase.Alert) {
	if a == nil {
		return
	}
	fmt.Fprintf(u.out, "[%s] %s\n", strings.ToUpper(string(a.Type)), a.Message)
}

func (u *UI) fieldErrors(errs map[string]string) {
	for _, field := range []string{"fullname", "email", "password", "phone"} {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(u.out, "  - %s\n", msg)
		}
	}
}
