package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Bank owns the bounded waiting line and the fixed clerk pool, applies
// admission control, drives the per-minute clerk ticks, and keeps the raw
// counters (profit before salary, served, lost). Derived aggregates live in
// the System, computed from per-minute samples.
type Bank struct {
	Clerks      []*Clerk
	Queue       *ClientQueue
	MaxQueueLen int

	Profit        float64 // cumulative realized profit, before salary deduction
	ServedClients int
	LostClients   int

	randomizer   *Randomizer
	serviceRange Range
	observer     Observer
}

// NewBank creates a bank with nClerks clerks (ids 0..n-1) and an empty line
// bounded at maxQueueLen. The randomizer supplies service durations at
// assignment time; a nil observer installs the no-op one.
func NewBank(nClerks, maxQueueLen int, randomizer *Randomizer, serviceRange Range, observer Observer) *Bank {
	if observer == nil {
		observer = NopObserver{}
	}
	clerks := make([]*Clerk, nClerks)
	for i := range clerks {
		clerks[i] = NewClerk(i)
	}
	return &Bank{
		Clerks:       clerks,
		Queue:        &ClientQueue{},
		MaxQueueLen:  maxQueueLen,
		randomizer:   randomizer,
		serviceRange: serviceRange,
		observer:     observer,
	}
}

// Admit applies bounded-queue admission control. A full line rejects the
// client: the lost counter is incremented and the client is returned to the
// caller to be marked lost. An admitted client joins the back of the line and
// nil is returned. Rejection is a normal business outcome, not an error.
func (b *Bank) Admit(client *Client) *Client {
	if b.Queue.Len() >= b.MaxQueueLen {
		b.LostClients++
		logrus.Debugf("queue full (%d), client %d turned away", b.MaxQueueLen, client.ID)
		return client
	}
	b.Queue.Enqueue(client)
	return nil
}

// Tick advances every clerk one minute, in id order, in two phases per clerk:
// first harvest a finished client, then hand a freed clerk the head of the
// line. Harvesting before reassignment lets a clerk that just finished pick
// up the next client within the same minute. Returns the harvested clients.
//
// now is the current absolute minute, used to stamp queue wait times when
// service starts.
func (b *Bank) Tick(now int, mode ClerkMode) []*Client {
	var processed []*Client
	for _, ck := range b.Clerks {
		ck.Tick(mode)
		if ck.Status != ClerkFree && ck.Status != statusForMode(mode) {
			continue
		}
		if ck.Client != nil {
			client := ck.Client
			if client.Status != ClientFinished {
				panic(fmt.Sprintf("clerk %d: harvesting client %d in state %s", ck.ID, client.ID, client.Status))
			}
			b.ServedClients++
			b.Profit += client.Profit
			b.observer.ClientRemoved(client.ID)
			processed = append(processed, client)
			ck.Client = nil
		}
		if ck.Status == ClerkFree && b.Queue.Len() > 0 {
			next := b.Queue.Dequeue()
			duration := b.randomizer.GenerateServiceDuration(b.serviceRange)
			next.StartService(now, duration)
			ck.Assign(next, duration)
			b.observer.ClientAssigned(next.ID, ck.ID+1)
		}
	}
	return processed
}

// DropQueue loses every client still in line at closing time. Each dropped
// client records the time it spent waiting; the line is empty afterwards.
func (b *Bank) DropQueue(now int) []*Client {
	dropped := b.Queue.Drain()
	b.LostClients += len(dropped)
	for _, client := range dropped {
		client.MarkLost(now - client.ArrivalTime)
	}
	return dropped
}

// StartWork flips off-shift and on-break clerks back to free, simulating
// shift start. Idempotent; safe to call every minute during business hours.
func (b *Bank) StartWork() {
	if len(b.Clerks) == 0 {
		return
	}
	if s := b.Clerks[0].Status; s != ClerkHome && s != ClerkOnBreak {
		return
	}
	for _, ck := range b.Clerks {
		if ck.Status == ClerkHome || ck.Status == ClerkOnBreak {
			ck.Status = ClerkFree
		}
	}
}

// BusyClerks returns the number of clerks currently serving a client.
func (b *Bank) BusyClerks() int {
	n := 0
	for _, ck := range b.Clerks {
		if ck.Status == ClerkBusy {
			n++
		}
	}
	return n
}
