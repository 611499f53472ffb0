package models

// Page identifies the screen currently shown to the user.
type Page string

const (
	PageHome      Page = "home"
	PageLogin     Page = "login"
	PageSignup    Page = "signup"
	PageEnterName Page = "enterName"
	PageDashboard Page = "dashboard"
	PageChat      Page = "chat"
)

// Valid reports whether p is one of the known pages.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageLogin, PageSignup, PageEnterName, PageDashboard, PageChat:
		return true
	}
	return false
}
