// Package metrics provides Prometheus observability for the bank floor
// simulator. Gauges mirror the statistics snapshot and are republished after
// every advance, so a scrape always sees the latest recomputed aggregates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/banksim/banksim/sim"
)

// Registry is the custom prometheus registry for the simulator.
var Registry = prometheus.NewRegistry()

// factory registers metrics to our custom Registry directly.
var factory = promauto.With(Registry)

var Profit = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "banksim",
	Name:      "profit",
	Help:      "Cumulative profit minus clerk salaries paid so far",
})

var ServedClients = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "banksim",
	Name:      "served_clients",
	Help:      "Number of clients that completed service",
})

var LostClients = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "banksim",
	Name:      "lost_clients",
	Help:      "Number of clients rejected at admission or dropped at closing",
})

// QueueLength carries the queue-length aggregates under a stat label:
// curr, min, max, avg.
var QueueLength = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "banksim",
	Name:      "queue_length",
	Help:      "Waiting line length aggregates over per-minute samples",
}, []string{"stat"})

var AvgWaitingTime = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "banksim",
	Name:      "avg_waiting_minutes",
	Help:      "Mean minutes a client spends in the line before service or loss",
})

var ClerkUtilization = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "banksim",
	Name:      "clerk_utilization",
	Help:      "Busy-minutes per clerk per elapsed open-business minute",
})

var SimulationDay = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "banksim",
	Name:      "day",
	Help:      "Current simulated day counter",
})

var SimulationMinute = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "banksim",
	Name:      "minute_of_day",
	Help:      "Current simulated minute of day",
})

// Publish updates every gauge from a statistics snapshot and clock position.
func Publish(st sim.Statistics, clock sim.Clock) {
	Profit.Set(st.Profit)
	ServedClients.Set(float64(st.ServedClients))
	LostClients.Set(float64(st.LostClients))
	QueueLength.WithLabelValues("curr").Set(float64(st.CurrQueueLen))
	QueueLength.WithLabelValues("min").Set(float64(st.MinQueueLen))
	QueueLength.WithLabelValues("max").Set(float64(st.MaxQueueLen))
	QueueLength.WithLabelValues("avg").Set(st.AvgQueueLen)
	AvgWaitingTime.Set(st.AvgWaitingTime)
	ClerkUtilization.Set(st.AvgClerkBusyTime)
	SimulationDay.Set(float64(clock.Date))
	SimulationMinute.Set(float64(clock.Minute))
}
