package sim

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// maxArrivalBurst bounds how many clients may land within a single minute.
// The pressure feedback can hold the scaled inter-arrival gap at zero once
// losses pile up against a zero range lower bound; past this bound the
// countdown is forced to one minute so the clock keeps progressing.
const maxArrivalBurst = 100

// System is the simulation scheduler: it owns the clock and calendar
// semantics, drives the Bank minute by minute, synthesizes arrivals, and
// recomputes the derived statistics from accumulated samples.
//
// The engine is single-threaded: Step advances exactly one logical minute and
// always completes before returning; multi-minute advances are bounded loops
// over it. Cancelling a long run is simply not issuing further steps;
// partial progress stays consistent.
type System struct {
	cfg      Config
	clock    Clock
	calendar Calendar

	randomizer *Randomizer
	bank       *Bank

	nextClientID int
	gap          int  // countdown to the next arrival, in minutes
	gapPending   bool // whether gap holds a drawn countdown

	processed []*Client // served clients, in harvest order
	lost      []*Client // rejected and dropped clients

	qlenSamples []float64 // queue length, one sample per open minute
	busySamples []float64 // busy clerk count, one sample per open minute

	minutesSimulated int // every stepped minute, open or not

	salaryPaid     float64 // cumulative salary deducted so far
	salaryPaidDate int     // last date a salary charge was applied

	stats Statistics
}

// NewSystem validates the configuration and creates a simulation positioned
// at opening time on day 1. A nil observer installs the no-op one.
func NewSystem(cfg Config, observer Observer) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if observer == nil {
		observer = NopObserver{}
	}
	randomizer, err := NewRandomizer(cfg.Distribution, cfg.Seed)
	if err != nil {
		return nil, err
	}
	s := &System{
		cfg:        cfg,
		clock:      Clock{Date: 1, Minute: cfg.Calendar.OpenHour * MinutesPerHour},
		calendar:   cfg.Calendar,
		randomizer: randomizer,
		bank:       NewBank(cfg.Clerks, cfg.MaxQueueLen, randomizer, cfg.ServiceDurationRange, observer),
	}
	s.RecomputeStats()
	return s, nil
}

// Step advances the simulation exactly one minute.
func (s *System) Step() {
	switch s.calendar.Classify(s.clock.Date, s.clock.Minute) {
	case ModeClosed:
		// On the exact minute the business day ended, settle the day's
		// statistics (including the salary charge) before the queue is lost.
		if s.calendar.IsClosingMinute(s.clock.Date, s.clock.Minute) {
			logrus.Infof("[%s] closing time, %d clients still in line", s.clock, s.bank.Queue.Len())
			s.RecomputeStats()
		}
		dropped := s.bank.DropQueue(s.clock.AbsoluteMinute())
		s.lost = append(s.lost, dropped...)
		s.gapPending = false
		s.clock.Advance()
		s.harvest(s.bank.Tick(s.clock.AbsoluteMinute(), ModeHome))

	case ModeBreak:
		s.clock.Advance()
		s.gapPending = false
		s.harvest(s.bank.Tick(s.clock.AbsoluteMinute(), ModeBreakOut))

	case ModeOpen:
		s.bank.StartWork()
		if !s.gapPending {
			s.gap = s.drawGap()
			s.gapPending = true
		}
		// A zero gap means an arrival lands this minute; redrawing inside the
		// loop lets several clients arrive within the same minute.
		burst := 0
		for s.gap == 0 {
			if burst == maxArrivalBurst {
				logrus.Warnf("[%s] arrival burst capped at %d this minute; forcing a 1-minute gap", s.clock, maxArrivalBurst)
				s.gap = 1
				break
			}
			s.synthesizeArrival()
			burst++
			s.gap = s.drawGap()
		}
		s.harvest(s.bank.Tick(s.clock.AbsoluteMinute(), ModeWork))
		s.clock.Advance()
		s.gap--
		s.qlenSamples = append(s.qlenSamples, float64(s.bank.Queue.Len()))
		s.busySamples = append(s.busySamples, float64(s.bank.BusyClerks()))
	}
	s.minutesSimulated++
}

// StepN advances n minutes and recomputes statistics once at the end.
func (s *System) StepN(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
	s.RecomputeStats()
}

// Advance runs one configured modeling step.
func (s *System) Advance() {
	s.StepN(s.cfg.StepMinutes)
}

// RunToEnd simulates through the modeled month, up to opening time on the
// day after its final day.
func (s *System) RunToEnd() {
	if remaining := s.remainingMinutes(); remaining > 0 {
		s.StepN(remaining)
	}
}

// Done reports whether the modeled month has been fully simulated.
func (s *System) Done() bool {
	return s.remainingMinutes() <= 0
}

func (s *System) remainingMinutes() int {
	return (s.cfg.ModelingDays+1-s.clock.Date)*MinutesPerDay +
		s.calendar.OpenHour*MinutesPerHour - s.clock.Minute
}

func (s *System) harvest(processed []*Client) {
	s.processed = append(s.processed, processed...)
}

// synthesizeArrival creates the next client and subjects it to admission
// control. A rejected client is lost immediately with zero wait.
func (s *System) synthesizeArrival() {
	profit := s.randomizer.GenerateProfit(s.cfg.ProfitRange)
	client := NewClient(s.nextClientID, s.clock.AbsoluteMinute(), profit)
	s.nextClientID++
	logrus.Infof("[%s] client %d arrives", s.clock, client.ID)
	if rejected := s.bank.Admit(client); rejected != nil {
		rejected.MarkLost(0)
		s.lost = append(s.lost, rejected)
	}
}

// InjectArrival bypasses the stochastic arrival process and admits a client
// with the given profit at the current minute. Intended for tests and
// hand-built scenarios; admission control still applies.
func (s *System) InjectArrival(profit float64) *Client {
	client := NewClient(s.nextClientID, s.clock.AbsoluteMinute(), profit)
	s.nextClientID++
	if rejected := s.bank.Admit(client); rejected != nil {
		rejected.MarkLost(0)
		s.lost = append(s.lost, rejected)
	}
	return client
}

func (s *System) drawGap() int {
	return s.randomizer.GenerateInterArrivalGap(s.cfg.InterArrivalRange,
		s.demandCoefficient(), s.pressureCoefficient())
}

// demandCoefficient shortens the inter-arrival gap on every fifth day and
// during the afternoon rush from 16:00.
func (s *System) demandCoefficient() float64 {
	width := s.cfg.InterArrivalRange.Width()
	if width == 0 {
		return 0
	}
	coef := 0.0
	if s.clock.Date%5 == 0 {
		coef -= 1 / width
	}
	if s.clock.Minute >= 16*MinutesPerHour {
		coef -= 2 / width
	}
	return coef
}

// pressureCoefficient shortens the gap as total losses and the current line
// grow. Arrivals speed up when the floor is already stressed, so small queue
// caps compound into runaway loss rates.
func (s *System) pressureCoefficient() float64 {
	width := s.cfg.InterArrivalRange.Width()
	if width == 0 {
		return 0
	}
	return -(float64(len(s.lost))/100 + float64(s.bank.Queue.Len())/3) / width
}

// RecomputeStats rebuilds the derived statistics from the raw counters and
// accumulated samples. Idempotent between steps: the salary charge is keyed
// by date so the closing-minute recomputation applies it exactly once.
func (s *System) RecomputeStats() {
	if s.calendar.IsClosingMinute(s.clock.Date, s.clock.Minute) && s.salaryPaidDate != s.clock.Date {
		s.salaryPaid += s.cfg.ClerkSalary * float64(s.cfg.Clerks)
		s.salaryPaidDate = s.clock.Date
	}

	st := Statistics{
		Profit:        s.bank.Profit - s.salaryPaid,
		ServedClients: s.bank.ServedClients,
		LostClients:   s.bank.LostClients,
	}

	if len(s.qlenSamples) > 0 {
		st.CurrQueueLen = int(s.qlenSamples[len(s.qlenSamples)-1])
		st.MinQueueLen = int(floats.Min(s.qlenSamples))
		st.MaxQueueLen = int(floats.Max(s.qlenSamples))
		st.AvgQueueLen = stat.Mean(s.qlenSamples, nil)
	}

	// Waiting time averages over served clients, lost clients that spent time
	// in line, and clients currently mid-service.
	waitSum := 0.0
	waitCount := 0
	for _, c := range s.processed {
		waitSum += float64(c.WaitTime)
		waitCount++
	}
	for _, c := range s.lost {
		if c.WaitTime > 0 {
			waitSum += float64(c.WaitTime)
			waitCount++
		}
	}
	for _, ck := range s.bank.Clerks {
		if ck.Client != nil {
			waitSum += float64(ck.Client.WaitTime)
			waitCount++
		}
	}
	st.AvgWaitingTime = waitSum / float64(max(waitCount, 1))

	openMinutes := s.calendar.OpenMinutes(s.clock.Date, s.clock.Minute)
	st.AvgClerkBusyTime = floats.Sum(s.busySamples) / float64(s.cfg.Clerks*max(openMinutes, 1))

	s.stats = st
}

// Snapshot recomputes and returns the current statistics. Side-effect-free
// with respect to simulation state: calling it twice without an intervening
// step returns identical values.
func (s *System) Snapshot() Statistics {
	s.RecomputeStats()
	return s.stats
}

// ClerkStatuses reports every clerk's current state, indexed by clerk id.
func (s *System) ClerkStatuses() []ClerkStatus {
	statuses := make([]ClerkStatus, len(s.bank.Clerks))
	for i, ck := range s.bank.Clerks {
		statuses[i] = ck.Status
	}
	return statuses
}

// Clock returns the current simulation time.
func (s *System) Clock() Clock {
	return s.clock
}

// Mode returns the calendar classification of the current minute.
func (s *System) Mode() Mode {
	return s.calendar.Classify(s.clock.Date, s.clock.Minute)
}

// CreatedClients returns the total number of clients synthesized so far.
func (s *System) CreatedClients() int {
	return s.nextClientID
}

// MinutesSimulated returns the number of minutes stepped since creation,
// counting closed and break minutes.
func (s *System) MinutesSimulated() int {
	return s.minutesSimulated
}
