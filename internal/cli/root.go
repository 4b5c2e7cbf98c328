// Package cli implements the postgen CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/VillePajala/linkedin-post-generator/internal/config"
	"github.com/VillePajala/linkedin-post-generator/internal/contexts"
	"github.com/VillePajala/linkedin-post-generator/internal/store"
)

var (
	configPath string
	log        = logrus.New()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "postgen",
	Short: "LinkedIn content tooling",
	Long:  "Convert LinkedIn Analytics exports, analyze what drives engagement, and draft new posts with an external AI CLI.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: $POSTGEN_CONFIG or ./config.yaml)")

	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("POSTGEN_CONFIG"); env != "" {
		return env
	}
	return "config.yaml"
}

// loadConfig loads the config file. Missing configuration is fatal for
// every command.
func loadConfig() *config.Config {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		exitErr("load config", err)
	}
	return cfg
}

// resolvePath anchors relative configured paths at the config file's
// directory, so the tool works from anywhere.
func resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(getConfigPath()), p)
}

func contextStore(cfg *config.Config) *contexts.Store {
	return &contexts.Store{Dir: resolvePath(cfg.Paths.Contexts)}
}

func openHistory() (*store.History, error) {
	if env := os.Getenv("POSTGEN_HISTORY_DB"); env != "" {
		return store.Open(env)
	}
	return store.Open(resolvePath("history.db"))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
