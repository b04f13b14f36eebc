package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wylee/dijkstar/server"
)

var serveFlags struct {
	configFile string
	host       string
	port       int
	graphFile  string
	format     string
	readOnly   bool
	logLevel   string
	authSecret string
	rateLimit  float64
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	Long: `Starts the HTTP service exposing graph-info, load-graph, reload-graph,
get-node, get-edge, and find-path. Settings layer as defaults, then the
config file, then DIJKSTAR_* environment variables, then flags.`,
	RunE: runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.StringVarP(&serveFlags.configFile, "config", "c", "", "path to YAML config file")
	flags.StringVarP(&serveFlags.host, "host", "H", "", "listen host")
	flags.IntVarP(&serveFlags.port, "port", "p", 0, "listen port")
	flags.StringVarP(&serveFlags.graphFile, "graph-file", "g", "", "graph file to load on startup")
	flags.StringVarP(&serveFlags.format, "format", "T", "", "graph file format (json or yaml)")
	flags.BoolVarP(&serveFlags.readOnly, "read-only", "R", false, "disable endpoints that modify the graph")
	flags.StringVarP(&serveFlags.logLevel, "log-level", "L", "", "log level (debug, info, warn, error)")
	flags.StringVar(&serveFlags.authSecret, "auth-secret", "", "HMAC secret for bearer-token auth on mutating endpoints")
	flags.Float64Var(&serveFlags.rateLimit, "rate-limit", 0, "requests per second per client (0 disables)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := server.DefaultConfig()
	if serveFlags.configFile != "" {
		if err := cfg.LoadFile(serveFlags.configFile); err != nil {
			return err
		}
	}
	if err := cfg.FromEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = serveFlags.host
	}
	if flags.Changed("port") {
		cfg.Port = serveFlags.port
	}
	if flags.Changed("graph-file") {
		cfg.GraphFile = serveFlags.graphFile
	}
	if flags.Changed("format") {
		cfg.GraphFormat = serveFlags.format
	}
	if flags.Changed("read-only") {
		cfg.ReadOnly = serveFlags.readOnly
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = serveFlags.logLevel
	}
	if flags.Changed("auth-secret") {
		cfg.AuthSecret = serveFlags.authSecret
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = serveFlags.rateLimit
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}
