// Package root contains the root command for the application
package root

import (
	"fjacquet/pain001/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

// MessageFlags represents the message and debtor details a CSV input cannot
// express itself
type MessageFlags struct {
	MessageID       string
	InitiatingParty string
	Version         string
	PaymentID       string
	DebtorName      string
	DebtorIBAN      string
	DebtorBIC       string
	ExecutionDate   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pain001",
		Short: "A CLI tool to generate ISO 20022 pain.001 payment files under the Swiss Payment Standards.",
		Long: `pain001 is a CLI tool that reads payment instructions from YAML or CSV
files and renders Customer Credit Transfer Initiation (pain.001) XML under the
SPS 2021 or SPS 2022 schema generation.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pain001!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Warnf("Invalid configuration, using defaults: %v", err)
				return
			}
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Message flags accessible to all commands
	Message = MessageFlags{}
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input payment file (.yaml or .csv)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output XML file (default stdout)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Validate, "validate", false, "Check the rendered document for well-formedness")
	Cmd.PersistentFlags().StringVar(&Message.Version, "sps-version", "", "Schema generation: SPS-2021 or SPS-2022")

	Cmd.PersistentFlags().StringVar(&Message.MessageID, "message-id", "", "Message identification (generated when empty)")
	Cmd.PersistentFlags().StringVar(&Message.InitiatingParty, "initiating-party", "", "Name of the initiating party")
	Cmd.PersistentFlags().StringVar(&Message.PaymentID, "payment-id", "", "Payment information identification for CSV input")
	Cmd.PersistentFlags().StringVar(&Message.DebtorName, "debtor-name", "", "Debtor name for CSV input")
	Cmd.PersistentFlags().StringVar(&Message.DebtorIBAN, "debtor-iban", "", "Debtor IBAN for CSV input")
	Cmd.PersistentFlags().StringVar(&Message.DebtorBIC, "debtor-bic", "", "Debtor bank BIC for CSV input")
	Cmd.PersistentFlags().StringVar(&Message.ExecutionDate, "execution-date", "", "Requested execution date (YYYY-MM-DD)")
}
