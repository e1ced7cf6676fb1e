package domain

// Page identifies the single mounted top-level view. The set is closed; any
// unknown identifier falls back to the welcome page.
type Page string

const (
	PageWelcome        Page = "welcome"
	PageLogin          Page = "login"
	PageRegister       Page = "register"
	PageDashboard      Page = "dashboard"
	PageSendMoney      Page = "send-money"
	PageTransactions   Page = "transactions"
	PageAdmin          Page = "admin"
	PageAdminDashboard Page = "admin-dashboard"
)

func (p Page) Valid() bool {
	switch p {
	case PageWelcome, PageLogin, PageRegister, PageDashboard,
		PageSendMoney, PageTransactions, PageAdmin, PageAdminDashboard:
		return true
	}
	return false
}

func ParsePage(s string) Page {
	if p := Page(s); p.Valid() {
		return p
	}
	return PageWelcome
}
