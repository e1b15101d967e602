// Package generate handles the payment file to pain.001 XML conversion command
package generate

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/xmlpath.v2"

	"fjacquet/pain001/cmd/root"
	"fjacquet/pain001/internal/config"
	"fjacquet/pain001/internal/loader"
	"fjacquet/pain001/internal/logging"
	"fjacquet/pain001/pkg/pain001"
)

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a pain.001 XML file from a payment file",
	Long: `Generate reads payment instructions from a YAML or CSV file and renders
the Customer Credit Transfer Initiation XML document.`,
	Run: generateFunc,
}

func generateFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file given, use --input")
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}

	version := cfg.DefaultVersion()
	if root.Message.Version != "" {
		version = pain001.Version(root.Message.Version)
		if !version.Valid() {
			root.Log.Fatalf("Unknown schema generation: %s", root.Message.Version)
		}
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	msg, err := loader.Load(root.SharedFlags.Input, loader.Meta{
		MessageID:       root.Message.MessageID,
		InitiatingParty: root.Message.InitiatingParty,
		Version:         version,
		PaymentID:       root.Message.PaymentID,
		DebtorName:      root.Message.DebtorName,
		DebtorIBAN:      root.Message.DebtorIBAN,
		DebtorBIC:       root.Message.DebtorBIC,
		ExecutionDate:   root.Message.ExecutionDate,
	}, logger)
	if err != nil {
		root.Log.Fatalf("Error loading payment file: %v", err)
	}
	msg.SetSoftwareInfo(cfg.Software.Name, cfg.Software.Version, cfg.Software.Manufacturer)

	xml, err := msg.AsXML()
	if err != nil {
		root.Log.Fatalf("Error rendering pain.001 document: %v", err)
	}

	if root.SharedFlags.Validate {
		if _, err := xmlpath.Parse(strings.NewReader(xml)); err != nil {
			root.Log.Fatalf("Rendered document is not well-formed: %v", err)
		}
		root.Log.Info("Rendered document is well-formed")
	}

	if root.SharedFlags.Output == "" {
		fmt.Print(xml)
	} else {
		if err := os.WriteFile(root.SharedFlags.Output, []byte(xml), 0600); err != nil {
			root.Log.Fatalf("Error writing output file: %v", err)
		}
		root.Log.Infof("Wrote pain.001 document to %s", root.SharedFlags.Output)
	}
	root.Log.Info("Payment file conversion completed successfully!")
}
