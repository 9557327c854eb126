// Defines the Client struct that models one customer's lifecycle in the
// simulation: arrival, waiting, service and the terminal finish/lost states.

package sim

import "fmt"

// ClientStatus represents the lifecycle state of a client.
type ClientStatus string

const (
	ClientWaiting  ClientStatus = "waiting"
	ClientServing  ClientStatus = "serving"
	ClientFinished ClientStatus = "finish"
	ClientLost     ClientStatus = "lost"
)

// Client models a single customer. A client is owned by exactly one of the
// bank's queue, a clerk's current-client slot, or a terminal collection
// (processed/lost), never more than one at a time.
type Client struct {
	ID            int
	Status        ClientStatus
	ArrivalTime   int     // absolute minute of simulation at creation
	WaitTime      int     // minutes between arrival and service start (or loss)
	ServeDuration int     // minutes of service, set when service starts
	Profit        float64 // realized only if served
}

// NewClient creates a client in the waiting state.
func NewClient(id, arrivalTime int, profit float64) *Client {
	return &Client{
		ID:          id,
		Status:      ClientWaiting,
		ArrivalTime: arrivalTime,
		Profit:      profit,
	}
}

// StartService marks the transition from waiting to serving and records the
// time spent in the queue.
func (c *Client) StartService(now, duration int) {
	c.ServeDuration = duration
	c.WaitTime = now - c.ArrivalTime
	c.Status = ClientServing
}

// MarkLost moves the client to the lost terminal state with the given wait.
// Immediate admission rejections carry a wait of 0.
func (c *Client) MarkLost(wait int) {
	c.WaitTime = wait
	c.Status = ClientLost
}

func (c Client) String() string {
	return fmt.Sprintf("Client: (ID: %d, Status: %s, ArrivalTime: %d)", c.ID, c.Status, c.ArrivalTime)
}
