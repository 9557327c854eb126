package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver captures the notifications the core emits.
type recordingObserver struct {
	assigned [][2]int // (clientID, window)
	removed  []int
}

func (o *recordingObserver) ClientAssigned(clientID, window int) {
	o.assigned = append(o.assigned, [2]int{clientID, window})
}

func (o *recordingObserver) ClientRemoved(clientID int) {
	o.removed = append(o.removed, clientID)
}

// newTestBank builds a bank with a fixed 3-minute service duration.
func newTestBank(t *testing.T, nClerks, maxQueueLen int, observer Observer) *Bank {
	t.Helper()
	r, err := NewRandomizer(DistUniform, 42)
	require.NoError(t, err)
	return NewBank(nClerks, maxQueueLen, r, Range{Lo: 3, Hi: 3}, observer)
}

func TestBank_Admit_FullQueue_RejectsWithoutEviction(t *testing.T) {
	// GIVEN a bank with 1 clerk busy for 100 minutes and queue cap 1
	b := newTestBank(t, 1, 1, nil)
	b.Clerks[0].Assign(NewClient(0, 0, 100), 100)

	// WHEN two clients arrive back to back
	first := NewClient(1, 0, 100)
	second := NewClient(2, 0, 100)
	rejectedFirst := b.Admit(first)
	rejectedSecond := b.Admit(second)

	// THEN the first fills the queue and the second bounces
	assert.Nil(t, rejectedFirst, "first client should be admitted")
	assert.Same(t, second, rejectedSecond, "second client should be rejected")
	assert.Equal(t, 1, b.LostClients)
	assert.Equal(t, 1, b.Queue.Len())
	assert.Same(t, first, b.Queue.Peek(), "admitted client must not be evicted")
}

func TestBank_Admit_ZeroCapacity_EveryClientLost(t *testing.T) {
	// With a queue cap of 0 and all clerks busy, every arrival is lost
	// immediately.
	b := newTestBank(t, 1, 0, nil)
	b.Clerks[0].Assign(NewClient(0, 0, 100), 100)

	for i := 1; i <= 5; i++ {
		rejected := b.Admit(NewClient(i, 0, 100))
		require.NotNil(t, rejected, "client %d should bounce off a zero-cap queue", i)
	}
	assert.Equal(t, 5, b.LostClients)
	assert.Equal(t, 0, b.Queue.Len())
}

func TestBank_Tick_AssignsQueuedClientToFreeClerk(t *testing.T) {
	// GIVEN a free clerk and one queued client
	obs := &recordingObserver{}
	b := newTestBank(t, 1, 10, obs)
	client := NewClient(7, 600, 250)
	require.Nil(t, b.Admit(client))

	// WHEN one work minute elapses at minute 605
	processed := b.Tick(605, ModeWork)

	// THEN the client starts service with its queue wait recorded
	assert.Empty(t, processed)
	assert.Equal(t, ClerkBusy, b.Clerks[0].Status)
	assert.Same(t, client, b.Clerks[0].Client)
	assert.Equal(t, ClientServing, client.Status)
	assert.Equal(t, 5, client.WaitTime)
	assert.Equal(t, 3, client.ServeDuration)
	assert.Equal(t, 0, b.Queue.Len())
	assert.Equal(t, [][2]int{{7, 1}}, obs.assigned, "window numbers are 1-based")
}

func TestBank_Tick_HarvestThenAssignSameMinute(t *testing.T) {
	// A clerk finishing a client picks up the next one within the same tick.
	obs := &recordingObserver{}
	b := newTestBank(t, 1, 10, obs)
	serving := NewClient(1, 0, 400)
	serving.StartService(0, 1)
	b.Clerks[0].Assign(serving, 1)
	next := NewClient(2, 0, 300)
	require.Nil(t, b.Admit(next))

	processed := b.Tick(10, ModeWork)

	require.Len(t, processed, 1)
	assert.Same(t, serving, processed[0])
	assert.Equal(t, 1, b.ServedClients)
	assert.Equal(t, 400.0, b.Profit)
	assert.Equal(t, []int{1}, obs.removed)
	assert.Same(t, next, b.Clerks[0].Client, "freed clerk should immediately take the queue head")
	assert.Equal(t, ClerkBusy, b.Clerks[0].Status)
}

func TestBank_Tick_NoAssignmentOffWork(t *testing.T) {
	// Once the mode is not work, a finishing clerk goes off-shift and never
	// picks up a new client.
	b := newTestBank(t, 1, 10, nil)
	serving := NewClient(1, 0, 400)
	serving.StartService(0, 1)
	b.Clerks[0].Assign(serving, 1)
	require.Nil(t, b.Admit(NewClient(2, 0, 300)))

	processed := b.Tick(10, ModeHome)

	require.Len(t, processed, 1)
	assert.Equal(t, ClerkHome, b.Clerks[0].Status)
	assert.Nil(t, b.Clerks[0].Client)
	assert.Equal(t, 1, b.Queue.Len(), "queued client must stay queued")
}

func TestBank_DropQueue_LosesRemainingClients(t *testing.T) {
	// GIVEN a closing-time queue holding 3 clients with distinct arrivals
	b := newTestBank(t, 1, 10, nil)
	b.Clerks[0].Assign(NewClient(0, 0, 100), 100)
	arrivals := []int{1100, 1120, 1135}
	for i, arrival := range arrivals {
		require.Nil(t, b.Admit(NewClient(i+1, arrival, 100)))
	}

	// WHEN the queue is dropped at the closing minute
	closing := 1140
	dropped := b.DropQueue(closing)

	// THEN exactly those clients come back lost with their waits recorded
	require.Len(t, dropped, 3)
	for i, c := range dropped {
		assert.Equal(t, ClientLost, c.Status)
		assert.Equal(t, closing-arrivals[i], c.WaitTime)
	}
	assert.Equal(t, 3, b.LostClients)
	assert.Equal(t, 0, b.Queue.Len())
}

func TestBank_StartWork_FlipsOffShiftClerks(t *testing.T) {
	b := newTestBank(t, 3, 10, nil)
	for _, ck := range b.Clerks {
		ck.Status = ClerkHome
	}

	b.StartWork()
	for i, ck := range b.Clerks {
		assert.Equal(t, ClerkFree, ck.Status, "clerk %d", i)
	}

	// Idempotent: calling again during business hours is a no-op.
	b.StartWork()
	for i, ck := range b.Clerks {
		assert.Equal(t, ClerkFree, ck.Status, "clerk %d", i)
	}
}

func TestBank_BusyClerks(t *testing.T) {
	b := newTestBank(t, 3, 10, nil)
	b.Clerks[1].Assign(NewClient(1, 0, 100), 10)

	assert.Equal(t, 1, b.BusyClerks())
}
