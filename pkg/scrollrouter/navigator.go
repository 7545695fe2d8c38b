package scrollrouter

import "github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/broadcast"

// Navigator is the capability set handed to section and navigation UI.
// Router implements it; NopNavigator is a safe stand-in before a Router
// exists.
type Navigator interface {
	Track(h Handle, route string)
	Untrack(h Handle)
	OnLinkClick(route string) error
	SetNavClicked(clicked bool)
	Subscribe(fn broadcast.Listener) (unsubscribe func())
	Active() (Handle, string)
	IsScrollingDown() bool
	Routes() []string
}

var (
	_ Navigator = (*Router)(nil)
	_ Navigator = NopNavigator{}
)

// NopNavigator performs no action.
type NopNavigator struct{}

func (NopNavigator) Track(Handle, string)                {}
func (NopNavigator) Untrack(Handle)                      {}
func (NopNavigator) OnLinkClick(string) error            { return nil }
func (NopNavigator) SetNavClicked(bool)                  {}
func (NopNavigator) Subscribe(broadcast.Listener) func() { return func() {} }
func (NopNavigator) Active() (Handle, string)            { return nil, "" }
func (NopNavigator) IsScrollingDown() bool               { return false }
func (NopNavigator) Routes() []string                    { return nil }
