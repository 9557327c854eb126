package sim

import "fmt"

// ClerkStatus represents the state of a clerk.
type ClerkStatus string

const (
	ClerkFree    ClerkStatus = "free"
	ClerkBusy    ClerkStatus = "busy"
	ClerkHome    ClerkStatus = "home"
	ClerkOnBreak ClerkStatus = "break"
)

// ClerkMode is what the calendar tells every clerk for one tick.
type ClerkMode string

const (
	ModeWork     ClerkMode = "work"
	ModeHome     ClerkMode = "home"
	ModeBreakOut ClerkMode = "break"
)

// statusForMode maps an off-work tick mode to the matching clerk status.
func statusForMode(mode ClerkMode) ClerkStatus {
	switch mode {
	case ModeHome:
		return ClerkHome
	case ModeBreakOut:
		return ClerkOnBreak
	default:
		return ClerkFree
	}
}

// Clerk is a per-server state machine holding at most one client. Status
// transitions happen only through Bank-driven ticks and StartWork, never from
// presentation code.
type Clerk struct {
	ID               int
	Status           ClerkStatus
	Client           *Client // present iff Status == ClerkBusy, until harvested
	RemainingMinutes int     // service countdown, meaningful iff Status == ClerkBusy
}

// NewClerk creates a free clerk with a fixed identity.
func NewClerk(id int) *Clerk {
	return &Clerk{ID: id, Status: ClerkFree}
}

// Assign binds a client to this clerk for the given service duration.
// Assigning to a non-free clerk is a scheduling contract violation.
func (ck *Clerk) Assign(client *Client, duration int) {
	if ck.Status != ClerkFree {
		panic(fmt.Sprintf("clerk %d: Assign while %s", ck.ID, ck.Status))
	}
	if client == nil {
		panic(fmt.Sprintf("clerk %d: Assign with nil client", ck.ID))
	}
	ck.Client = client
	ck.RemainingMinutes = duration
	ck.Status = ClerkBusy
}

// Tick advances the clerk one minute. An in-progress service keeps counting
// down regardless of mode; the mode only decides where the clerk goes once it
// finishes, so a clerk completing a client exactly at closing time goes
// off-shift instead of staying free. A clerk never returns from home/break on
// its own; Bank.StartWork flips it back at shift start.
func (ck *Clerk) Tick(mode ClerkMode) {
	switch ck.Status {
	case ClerkBusy:
		ck.RemainingMinutes--
		if ck.RemainingMinutes <= 0 {
			ck.Client.Status = ClientFinished
			if mode == ModeWork {
				ck.Status = ClerkFree
			} else {
				ck.Status = statusForMode(mode)
			}
		}
	case ClerkFree:
		if mode != ModeWork {
			ck.Status = statusForMode(mode)
		}
	}
}

func (ck Clerk) String() string {
	return fmt.Sprintf("Clerk: (ID: %d, Status: %s, Remaining: %d)", ck.ID, ck.Status, ck.RemainingMinutes)
}
