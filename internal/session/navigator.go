package session

// Route is a screen the console can be sent to.
type Route string

const (
	RouteLogin         Route = "/login"
	RouteHome          Route = "/"
	RouteVerifications Route = "/verifications"
)

// Navigator moves the operator to another screen. The web UI and the CLI
// each supply their own.
type Navigator interface {
	Navigate(to Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(to Route)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(to Route) { f(to) }

type nopNavigator struct{}

func (nopNavigator) Navigate(Route) {}
