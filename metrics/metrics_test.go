package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/banksim/banksim/sim"
)

func TestPublish_SetsGaugesFromSnapshot(t *testing.T) {
	st := sim.Statistics{
		Profit:           12345.5,
		ServedClients:    42,
		LostClients:      7,
		CurrQueueLen:     2,
		MinQueueLen:      0,
		MaxQueueLen:      9,
		AvgQueueLen:      3.25,
		AvgWaitingTime:   4.5,
		AvgClerkBusyTime: 0.8,
	}
	clock := sim.Clock{Date: 12, Minute: 615}

	Publish(st, clock)

	assert.Equal(t, 12345.5, testutil.ToFloat64(Profit))
	assert.Equal(t, 42.0, testutil.ToFloat64(ServedClients))
	assert.Equal(t, 7.0, testutil.ToFloat64(LostClients))
	assert.Equal(t, 2.0, testutil.ToFloat64(QueueLength.WithLabelValues("curr")))
	assert.Equal(t, 0.0, testutil.ToFloat64(QueueLength.WithLabelValues("min")))
	assert.Equal(t, 9.0, testutil.ToFloat64(QueueLength.WithLabelValues("max")))
	assert.Equal(t, 3.25, testutil.ToFloat64(QueueLength.WithLabelValues("avg")))
	assert.Equal(t, 4.5, testutil.ToFloat64(AvgWaitingTime))
	assert.Equal(t, 0.8, testutil.ToFloat64(ClerkUtilization))
	assert.Equal(t, 12.0, testutil.ToFloat64(SimulationDay))
	assert.Equal(t, 615.0, testutil.ToFloat64(SimulationMinute))
}

func TestPublish_RepublishOverwrites(t *testing.T) {
	Publish(sim.Statistics{ServedClients: 1}, sim.Clock{Date: 1})
	Publish(sim.Statistics{ServedClients: 2}, sim.Clock{Date: 1})

	assert.Equal(t, 2.0, testutil.ToFloat64(ServedClients))
}
