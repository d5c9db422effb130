// Package cmd provides the command-line interface for wardkeeper.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/triagehall/wardkeeper/config"
	"github.com/triagehall/wardkeeper/console"
	"github.com/triagehall/wardkeeper/datarecording"
	"github.com/triagehall/wardkeeper/monitoring"
	"github.com/triagehall/wardkeeper/storage"
)

var (
	flagDataDir     string
	flagAuditDB     string
	flagMonitor     bool
	flagMonitorPort int
)

// rootCmd runs the interactive hospital console.
var rootCmd = &cobra.Command{
	Use:   "wardkeeper",
	Short: "Wardkeeper runs the hospital patient care console.",
	Long: `Wardkeeper runs the interactive hospital patient care console. It keeps ` +
		`the patient admission queue, the medical supply stack, the emergency ` +
		`priority queue, and the ambulance rotation schedule, each persisted to a ` +
		`plain text file after every change.`,
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagDataDir, "data-dir", "",
		"directory holding the container text files")
	rootCmd.Flags().StringVar(&flagAuditDB, "audit-db", "",
		"SQLite audit database path, without extension")
	rootCmd.Flags().BoolVar(&flagMonitor, "monitor", false,
		"start the web monitor")
	rootCmd.Flags().IntVar(&flagMonitorPort, "monitor-port", 0,
		"web monitor port, 0 picks a random one")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func run() {
	cfg := config.Load()
	applyFlags(cfg)

	c := console.New(os.Stdin, os.Stdout).
		WithStore(storage.NewStore(cfg.DataDir))

	if cfg.AuditDB != "" {
		recorder := datarecording.New(cfg.AuditDB)
		c.WithAudit(datarecording.NewOpRecorder(recorder))
	}

	if cfg.Monitor {
		startMonitor(cfg, c)
	}

	c.LoadAll()
	c.Run()
}

func applyFlags(cfg *config.Config) {
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagAuditDB != "" {
		cfg.AuditDB = flagAuditDB
	}
	if flagMonitor {
		cfg.Monitor = true
	}
	if flagMonitorPort != 0 {
		cfg.MonitorPort = flagMonitorPort
	}
}

func startMonitor(cfg *config.Config, c *console.Console) {
	m := monitoring.NewMonitor()
	if cfg.MonitorPort != 0 {
		m.WithPortNumber(cfg.MonitorPort)
	}

	m.RegisterContainer("patients", c.Patients())
	m.RegisterContainer("supplies", c.Supplies())
	m.RegisterContainer("emergencies", c.Emergencies())
	m.RegisterContainer("ambulances", c.Ambulances())

	m.StartServer()
}
