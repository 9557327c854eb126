// Implements the ClientQueue, which holds all clients waiting for a clerk.
// Clients are enqueued on arrival; the length bound is enforced by the Bank's
// admission control, never by eviction.

package sim

import (
	"fmt"
	"strings"
)

// ClientQueue is the FIFO line of clients waiting to be assigned to a clerk.
type ClientQueue struct {
	queue []*Client
}

// Enqueue adds a client to the back of the line.
func (q *ClientQueue) Enqueue(c *Client) {
	q.queue = append(q.queue, c)
}

// Dequeue removes and returns the client at the front of the line.
// Returns nil if the line is empty.
func (q *ClientQueue) Dequeue() *Client {
	if len(q.queue) == 0 {
		return nil
	}
	head := q.queue[0]
	q.queue = q.queue[1:]
	return head
}

// Len returns the number of waiting clients.
func (q *ClientQueue) Len() int {
	return len(q.queue)
}

// Peek returns the front client without removing it, or nil if empty.
func (q *ClientQueue) Peek() *Client {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Drain empties the line and returns the removed clients in FIFO order.
// Used once per day at closing time.
func (q *ClientQueue) Drain() []*Client {
	drained := q.queue
	q.queue = nil
	return drained
}

func (q *ClientQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range q.queue {
		sb.WriteString(fmt.Sprint(c))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
