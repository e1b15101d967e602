package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/pain001/cmd/generate"
	"fjacquet/pain001/cmd/root"
	"fjacquet/pain001/cmd/schema"
	"fjacquet/pain001/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	config.LoadEnv()

	// 2. Configure global log level directly - this affects ALL new loggers
	configureLogLevelDirectly()

	// 3. Now that logging is properly configured, initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(generate.Cmd)
	root.Cmd.AddCommand(schema.Cmd)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
// before the command runs and the full configuration is read
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("PAIN001_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info" // Default log level
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		// Don't log here, just use default info level if we can't parse
		logLevel = logrus.InfoLevel
	}

	// Set the global logrus level before any logging happens
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
