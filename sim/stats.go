// Tracks simulation-wide derived statistics recomputed from per-minute
// samples: queue-length aggregates, average waiting time, clerk utilization,
// and profit after salary.

package sim

import "fmt"

// Metric names used in the Statistics.Map snapshot.
const (
	MetricProfit           = "profit"
	MetricServedClients    = "served_clients"
	MetricLostClients      = "lost_clients"
	MetricCurrQueueLen     = "curr_q_len"
	MetricMinQueueLen      = "min_q_len"
	MetricMaxQueueLen      = "max_q_len"
	MetricAvgQueueLen      = "avg_q_len"
	MetricAvgWaitingTime   = "avg_waiting_time"
	MetricAvgClerkBusyTime = "avg_clerk_busy_time"
)

// Statistics is the typed aggregate of derived metrics. It is a value
// snapshot: recomputing without an intervening step yields identical values.
type Statistics struct {
	Profit           float64 // cumulative profit minus salaries paid
	ServedClients    int
	LostClients      int
	CurrQueueLen     int
	MinQueueLen      int
	MaxQueueLen      int
	AvgQueueLen      float64
	AvgWaitingTime   float64 // minutes
	AvgClerkBusyTime float64 // busy-minutes per clerk per open-business minute
}

// Map returns the snapshot keyed by metric name.
func (s Statistics) Map() map[string]float64 {
	return map[string]float64{
		MetricProfit:           s.Profit,
		MetricServedClients:    float64(s.ServedClients),
		MetricLostClients:      float64(s.LostClients),
		MetricCurrQueueLen:     float64(s.CurrQueueLen),
		MetricMinQueueLen:      float64(s.MinQueueLen),
		MetricMaxQueueLen:      float64(s.MaxQueueLen),
		MetricAvgQueueLen:      s.AvgQueueLen,
		MetricAvgWaitingTime:   s.AvgWaitingTime,
		MetricAvgClerkBusyTime: s.AvgClerkBusyTime,
	}
}

// Print displays the aggregated statistics at the end of a run.
func (s Statistics) Print() {
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Served clients       : %d\n", s.ServedClients)
	fmt.Printf("Lost clients         : %d\n", s.LostClients)
	fmt.Printf("Profit               : %.0f\n", s.Profit)
	fmt.Printf("Queue length         : curr %d, min %d, max %d, avg %.3f\n",
		s.CurrQueueLen, s.MinQueueLen, s.MaxQueueLen, s.AvgQueueLen)
	fmt.Printf("Average waiting time : %.3f min\n", s.AvgWaitingTime)
	fmt.Printf("Clerk utilization    : %.3f\n", s.AvgClerkBusyTime)
}
