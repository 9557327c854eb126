package cmd

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/banksim/banksim/metrics"
	"github.com/banksim/banksim/sim"
)

var (
	// CLI flags for the simulation parameters
	seed         int64  // Seed for the shared random generator
	logLevel     string // Log verbosity level
	clerks       int    // Number of clerk windows
	maxQueueLen  int    // Waiting line bound
	distribution string // Distribution family: uniform or normal
	arrivalFrom  int    // Inter-arrival range lower bound (minutes)
	arrivalTo    int    // Inter-arrival range upper bound (minutes)
	profitFrom   float64
	profitTo     float64
	serviceFrom  int // Service duration range lower bound (minutes)
	serviceTo    int // Service duration range upper bound (minutes)
	stepMinutes  int // Minutes simulated per advance
	days         int // Length of the modeled month
	salary       float64

	scenariosFile string // YAML file with named scenario presets
	scenarioName  string // Preset to apply from the scenarios file

	metricsAddr string // Address to expose Prometheus metrics, empty = off
	wait        bool   // Keep the process alive after the run for scraping
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "banksim",
	Short: "Discrete-time simulator of a bank's service floor",
}

// tabloObserver relays the core's display notifications to the log. It stands
// in for the on-screen client ticker; the engine works the same without it.
type tabloObserver struct{}

func (tabloObserver) ClientAssigned(clientID, window int) {
	logrus.Debugf("tablo: client %d -> window %d", clientID, window)
}

func (tabloObserver) ClientRemoved(clientID int) {
	logrus.Debugf("tablo: client %d leaves", clientID)
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bank floor simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := buildConfig()

		if scenariosFile != "" && scenarioName != "" {
			scenario, err := GetScenario(scenariosFile, scenarioName)
			if err != nil {
				logrus.Fatalf("unable to read scenarios file: %v", err)
			}
			if scenario == nil {
				logrus.Fatalf("scenario %q not found in %s", scenarioName, scenariosFile)
			}
			scenario.Apply(&cfg)
		}

		if metricsAddr != "" {
			go serveMetrics(metricsAddr)
		}

		system, err := sim.NewSystem(cfg, tabloObserver{})
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation: %d clerks, queue cap %d, %s draws, %d-day month",
			cfg.Clerks, cfg.MaxQueueLen, cfg.Distribution, cfg.ModelingDays)
		startTime := time.Now()

		for !system.Done() {
			system.Advance()
			metrics.Publish(system.Snapshot(), system.Clock())
		}

		final := system.Snapshot()
		final.Print()
		logrus.Infof("Simulated %d minutes in %v", system.MinutesSimulated(), time.Since(startTime))

		if wait {
			logrus.Info("Run complete, waiting for metric scrapes (Ctrl-C to exit)")
			select {}
		}
	},
}

func buildConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Seed = seed
	cfg.Clerks = clerks
	cfg.MaxQueueLen = maxQueueLen
	cfg.Distribution = sim.DistributionKind(distribution)
	cfg.InterArrivalRange = sim.Range{Lo: float64(arrivalFrom), Hi: float64(arrivalTo)}
	cfg.ProfitRange = sim.Range{Lo: profitFrom, Hi: profitTo}
	cfg.ServiceDurationRange = sim.Range{Lo: float64(serviceFrom), Hi: float64(serviceTo)}
	cfg.StepMinutes = stepMinutes
	cfg.ModelingDays = days
	cfg.ClerkSalary = salary
	return cfg
}

func serveMetrics(addr string) {
	http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	logrus.Infof("Metrics server listening on %s/metrics", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logrus.Errorf("Metrics server error: %v", err)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the shared random generator")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&clerks, "clerks", 3, "Number of clerk windows")
	runCmd.Flags().IntVar(&maxQueueLen, "max-queue-len", 10, "Maximum waiting line length")
	runCmd.Flags().StringVar(&distribution, "distribution", "uniform", "Distribution family (uniform, normal)")
	runCmd.Flags().IntVar(&arrivalFrom, "arrival-from", 0, "Minimum minutes between arrivals")
	runCmd.Flags().IntVar(&arrivalTo, "arrival-to", 15, "Maximum minutes between arrivals")
	runCmd.Flags().Float64Var(&profitFrom, "profit-from", 100, "Minimum profit per served client")
	runCmd.Flags().Float64Var(&profitTo, "profit-to", 10000, "Maximum profit per served client")
	runCmd.Flags().IntVar(&serviceFrom, "service-from", 2, "Minimum service duration in minutes")
	runCmd.Flags().IntVar(&serviceTo, "service-to", 30, "Maximum service duration in minutes")
	runCmd.Flags().IntVar(&stepMinutes, "step", 30, "Minutes per modeling step (1, 5, 30, 60, 120 or 1440)")
	runCmd.Flags().IntVar(&days, "days", 30, "Length of the modeled month in days")
	runCmd.Flags().Float64Var(&salary, "salary", 2000, "Per-clerk salary charged at each business-day close")

	runCmd.Flags().StringVar(&scenariosFile, "scenarios", "", "YAML file with named scenario presets")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Scenario preset to apply")

	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Address to expose Prometheus metrics (e.g. :9090)")
	runCmd.Flags().BoolVar(&wait, "wait", false, "Keep the process running after completion for metric scraping")

	rootCmd.AddCommand(runCmd)
}
