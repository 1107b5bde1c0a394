package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/color-picker-mcp/internal/config"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
	"github.com/ironsheep/color-picker-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("colorpicker-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("colorpicker-mcp - MCP server for a gradient color picker")
			fmt.Println()
			fmt.Println("Usage: colorpicker-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=path     Config file (default <user config dir>/colorpicker/config.json)\n", config.EnvPath)
			fmt.Printf("  %s=debug  Log level: debug, info, warn, error\n", config.EnvLogLevel)
			fmt.Printf("  %s=100       Initial y coordinate; the surface is 2y+1 by 2y\n", config.EnvExtent)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.Level() // validated by Load

	// Logs go to stderr; stdout is for MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	server.SetLogger(logger.With("component", "server"))
	picker.SetLogger(logger.With("component", "picker"))

	if Version != "dev" {
		server.Version = Version
	}
	logger.Debug("starting colorpicker-mcp", "version", Version, "built", BuildTime, "commit", GitCommit)

	srv := server.New(cfg)
	err = srv.Run()
	_ = srv.Close()
	if err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
