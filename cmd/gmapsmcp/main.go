package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mapworks/gmapsmcp/pkg/config"
	"github.com/mapworks/gmapsmcp/pkg/server"
	"github.com/mapworks/gmapsmcp/pkg/version"
)

var (
	showVersionFlag bool
	debug           bool
	httpAddr        string
	envFile         string
	generateConfig  string
)

func init() {
	flag.BoolVar(&showVersionFlag, "version", false, "Display version information")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&httpAddr, "http", "", "Serve over HTTP/SSE on this address instead of stdio (e.g. :3333)")
	flag.StringVar(&envFile, "env", "", "Path to a .env file to load")
	flag.StringVar(&generateConfig, "generate-config", "", "Generate a Claude Desktop Client config file at the specified path")
}

func main() {
	flag.Parse()

	var logLevel slog.Level
	if debug {
		logLevel = slog.LevelDebug
	} else {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if showVersionFlag {
		fmt.Println(version.String())
		return
	}

	if generateConfig != "" {
		if err := generateClientConfig(generateConfig); err != nil {
			logger.Error("failed to generate config", "error", err)
			os.Exit(1)
		}
		logger.Info("successfully generated Claude Desktop Client config", "path", generateConfig)
		return
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting Google Maps MCP server",
		"version", version.BuildVersion,
		"log_level", logLevel.String())

	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if httpAddr != "" {
		logger.Info("serving over HTTP", "addr", httpAddr)
		if err := srv.RunHTTP(httpAddr); err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("server initialized, waiting for requests")
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// generateClientConfig creates or updates a Claude Desktop Client config
// file, adding this server's entry. An existing file is merged, not
// overwritten. The entry references the GOOGLE_MAPS_API_KEY environment
// variable rather than embedding a credential.
func generateClientConfig(outputPath string) error {
	logger := slog.Default()

	if outputPath == "" {
		return fmt.Errorf("config path must not be empty")
	}
	if strings.Contains(outputPath, "..") {
		return fmt.Errorf("config path must not contain \"..\"")
	}
	if filepath.Ext(outputPath) != ".json" {
		return fmt.Errorf("config path must have a .json extension")
	}

	execPath, err := os.Executable()
	if err != nil {
		execPath = os.Args[0]
	}
	absExecPath, err := filepath.Abs(execPath)
	if err != nil {
		absExecPath = execPath
	}

	serverConfig := map[string]interface{}{
		"command": absExecPath,
		"args":    []string{},
		"env": map[string]string{
			"GOOGLE_MAPS_API_KEY": "${GOOGLE_MAPS_API_KEY}",
		},
	}

	var cfg map[string]interface{}
	if _, err := os.Stat(outputPath); err == nil {
		data, err := os.ReadFile(outputPath)
		if err != nil {
			return fmt.Errorf("failed to read existing config: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			logger.Warn("existing config is not valid JSON, will create new", "error", err)
			cfg = make(map[string]interface{})
		}
	} else {
		cfg = make(map[string]interface{})
	}

	mcpServers, ok := cfg["mcpServers"].(map[string]interface{})
	if !ok {
		mcpServers = make(map[string]interface{})
		cfg["mcpServers"] = mcpServers
	}
	mcpServers["GoogleMaps"] = serverConfig

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
