package sim

// Observer receives fire-and-forget display notifications from the core.
// The engine has no dependency on their outcome and functions identically
// with NopObserver installed.
type Observer interface {
	// ClientAssigned fires when a client begins service at a clerk window.
	// Windows are numbered from 1.
	ClientAssigned(clientID, window int)
	// ClientRemoved fires when a client leaves the active display,
	// keyed by client id.
	ClientRemoved(clientID int)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) ClientAssigned(int, int) {}
func (NopObserver) ClientRemoved(int)       {}
