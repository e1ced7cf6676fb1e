package term

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/meshpay/meshpay-client/internal/adapters/export"
	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/pkg/format"
	"github.com/meshpay/meshpay-client/internal/usecase"
)

func (u *UI) welcome() (quit bool) {
	u.header("MeshPay", "Fast, secure payments for everyone")
	fmt.Fprintln(u.out, "  [1] Sign in")
	fmt.Fprintln(u.out, "  [2] Create account")
	fmt.Fprintln(u.out, "  [q] Quit")
	switch u.prompt("Choose") {
	case "1":
		u.app.Navigate(domain.PageLogin)
	case "2":
		u.app.Navigate(domain.PageRegister)
	case "q":
		return true
	}
	return u.eof
}

func (u *UI) login(ctx context.Context) {
	form := u.app.LoginForm()
	u.header("Welcome Back", "Sign in to your MeshPay account")

	for !u.eof {
		email := u.prompt("Email (or 'b' for back)")
		if email == "b" {
			u.app.Navigate(domain.PageWelcome)
			return
		}
		form.SetEmail(email)
		form.SetPassword(u.prompt("Password"))

		next, ok := form.Submit(ctx)
		if !ok {
			u.fieldErrors(form.Errors)
			u.alert(form.Alert)
			continue
		}
		u.alert(form.Alert)
		time.Sleep(usecase.RedirectDelay)
		u.app.Navigate(next)
		return
	}
}

func (u *UI) register(ctx context.Context) {
	form := u.app.RegisterForm()
	u.header("Create Account", "Join the MeshPay network today")

	for !u.eof {
		fullname := u.prompt("Full name (or 'b' for back)")
		if fullname == "b" {
			u.app.Navigate(domain.PageWelcome)
			return
		}
		form.SetFullname(fullname)
		form.SetEmail(u.prompt("Email"))
		form.SetPassword(u.prompt("Password"))
		form.SetPhone(u.prompt("Phone (e.g. 09012345678)"))

		next, ok := form.Submit(ctx)
		if !ok {
			u.fieldErrors(form.Errors)
			u.alert(form.Alert)
			continue
		}
		u.alert(form.Alert)
		time.Sleep(usecase.RedirectDelay)
		u.app.Navigate(next)
		return
	}
}

func (u *UI) dashboard(ctx context.Context) {
	d := u.app.Dashboard()
	if next, redirect := d.Mount(ctx); redirect {
		u.app.Navigate(next)
		return
	}
	defer d.Close()

	for !u.eof {
		user := d.User()
		u.header("Welcome back", user.Fullname)
		if !d.Connected() {
			fmt.Fprintln(u.out, "(offline)")
		}
		u.alert(d.Alert())
		d.ClearAlert()

		if unread := d.UnreadNotifications(); len(unread) > 0 {
			fmt.Fprintln(u.out, "-- New Transaction --")
			for _, n := range unread {
				fmt.Fprintf(u.out, "  * %s\n", n.Message)
			}
		}

		fmt.Fprintf(u.out, "Balance: %s\n", format.Currency(d.Balance()))
		fmt.Fprintf(u.out, "Account: %s  Phone: %s\n", user.AccountNumber, user.Phone)

		if recent := d.Recent(); len(recent) > 0 {
			fmt.Fprintln(u.out, "Recent activity:")
			for _, tx := range recent {
				u.transactionLine(tx, user.AccountNumber)
			}
		}

		fmt.Fprintln(u.out, "  [1] Send money")
		fmt.Fprintln(u.out, "  [2] Transaction history")
		fmt.Fprintln(u.out, "  [3] Refresh balance")
		if len(d.UnreadNotifications()) > 0 {
			fmt.Fprintln(u.out, "  [4] Dismiss notifications")
		}
		if u.app.IsAdmin() {
			fmt.Fprintln(u.out, "  [5] Admin panel")
		}
		fmt.Fprintln(u.out, "  [0] Log out")

		switch u.prompt("Choose") {
		case "1":
			u.app.Navigate(domain.PageSendMoney)
			return
		case "2":
			u.app.Navigate(domain.PageTransactions)
			return
		case "3":
			d.Refresh(ctx)
		case "4":
			d.DismissNotifications(ctx)
		case "5":
			if u.app.IsAdmin() {
				u.app.Navigate(domain.PageAdmin)
				return
			}
		case "0":
			u.app.Logout()
			return
		}
	}
}

func (u *UI) sendMoney(ctx context.Context) {
	s := u.app.SendMoney()
	if next, redirect := s.Mount(); redirect {
		u.app.Navigate(next)
		return
	}
	u.header("Send Money", "Transfer money to another MeshPay user")

	for !u.eof {
		switch s.Step() {
		case usecase.StepForm:
			recipient := u.prompt("Recipient account (10 digits, or 'b' for back)")
			if recipient == "b" {
				u.app.Navigate(domain.PageDashboard)
				return
			}
			s.SetRecipient(ctx, recipient)
			if name := s.RecipientName(); name != "" {
				fmt.Fprintf(u.out, "  ✓ %s\n", name)
			}
			s.SetAmount(u.prompt("Amount"))
			s.SetDescription(u.prompt("Description (optional)"))
			if !s.Continue() {
				u.alert(s.Alert)
			}
		case usecase.StepConfirm:
			fmt.Fprintln(u.out, "Confirm Transfer")
			fmt.Fprintf(u.out, "  To:     %s (%s)\n", s.RecipientName(), s.Recipient())
			fmt.Fprintf(u.out, "  Amount: %s\n", format.Currency(s.AmountValue()))
			if s.Description() != "" {
				fmt.Fprintf(u.out, "  Note:   %s\n", s.Description())
			}
			fmt.Fprintf(u.out, "  From:   %s (%s)\n", s.Sender().Fullname, s.Sender().AccountNumber)
			if u.prompt("Send? [y/n]") != "y" {
				s.Back()
				continue
			}
			if !s.Confirm(ctx) {
				u.alert(s.Alert)
			}
		case usecase.StepSuccess:
			fmt.Fprintln(u.out, "Transfer Successful!")
			fmt.Fprintf(u.out, "%s has been sent to %s\n", format.Currency(s.AmountValue()), s.RecipientName())
			u.prompt("Press enter to return to the dashboard")
			u.app.Navigate(domain.PageDashboard)
			return
		}
	}
}

func (u *UI) history(ctx context.Context) {
	h := u.app.History()
	if next, redirect := h.Mount(ctx); redirect {
		u.app.Navigate(next)
		return
	}
	u.header("Transaction History", "Review your payment activity")

	for !u.eof {
		u.alert(h.Alert)
		for _, tx := range h.Filtered() {
			u.transactionLine(tx, h.User().AccountNumber)
		}
		fmt.Fprintln(u.out, "  [a]ll  [s]ent  [r]eceived  [p]df export  [x]lsx export  [b]ack")
		switch u.prompt("Choose") {
		case "a":
			h.SetFilter(usecase.FilterAll)
		case "s":
			h.SetFilter(usecase.FilterSent)
		case "r":
			h.SetFilter(usecase.FilterReceived)
		case "p":
			u.exportStatement("meshpay_statement.pdf", func(w io.Writer) error {
				return export.PDF(h.Filtered(), h.User().AccountNumber, w)
			})
		case "x":
			u.exportStatement("meshpay_statement.xlsx", func(w io.Writer) error {
				return export.XLSX(h.Filtered(), h.User().AccountNumber, w)
			})
		case "b":
			u.app.Navigate(domain.PageDashboard)
			return
		}
	}
}

func (u *UI) exportStatement(name string, write func(w io.Writer) error) {
	f, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(u.out, "export failed: %v\n", err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintf(u.out, "export failed: %v\n", err)
		return
	}
	fmt.Fprintf(u.out, "statement written to %s\n", name)
}

func (u *UI) admin() {
	u.header("Admin Panel", "Manage the MeshPay system")
	fmt.Fprintln(u.out, "  [1] User management")
	fmt.Fprintln(u.out, "  [b] Back")
	switch u.prompt("Choose") {
	case "1":
		u.app.Navigate(domain.PageAdminDashboard)
	case "b":
		u.app.Navigate(domain.PageDashboard)
	}
}

func (u *UI) adminDashboard(ctx context.Context) {
	a := u.app.AdminDashboard()
	if next, redirect := a.Mount(ctx); redirect {
		u.app.Navigate(next)
		return
	}
	u.header("User Management", "Overview of all MeshPay users")

	for !u.eof {
		u.alert(a.Alert)
		fmt.Fprintf(u.out, "Total users: %d  Total balance: %s\n", len(a.Users()), format.Currency(a.TotalBalance()))
		for _, usr := range a.Filtered() {
			fmt.Fprintf(u.out, "  %-24s %-28s %s  %s\n", usr.Fullname, usr.Email, usr.AccountNumber, format.Currency(usr.Balance))
		}
		fmt.Fprintln(u.out, "  [/] Search  [r] Refresh  [b] Back")
		switch choice := u.prompt("Choose"); choice {
		case "/":
			a.SetSearch(u.prompt("Search term"))
		case "r":
			a.Load(ctx)
		case "b":
			u.app.Navigate(domain.PageAdmin)
			return
		}
	}
}

func (u *UI) transactionLine(tx domain.Transaction, account string) {
	sign := "+"
	who := fmt.Sprintf("from %s (%s)", tx.SenderName, tx.From)
	if tx.Direction(account) == domain.DirectionSent {
		sign = "-"
		who = fmt.Sprintf("to %s (%s)", tx.ReceiverName, tx.To)
	}
	line := fmt.Sprintf("  %s%s %s %s  %s", sign, format.Currency(tx.Amount), tx.Direction(account), who, tx.Timestamp)
	if tx.Status == domain.StatusFailed {
		line += "  [failed]"
	}
	fmt.Fprintln(u.out, line)
}
