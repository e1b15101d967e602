// Package schema prints the schema facts of a generation
package schema

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/pain001/cmd/root"
	"fjacquet/pain001/internal/config"
	"fjacquet/pain001/pkg/pain001"
)

// Cmd represents the schema command
var Cmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the namespace and schema location of a generation",
	Run:   schemaFunc,
}

func schemaFunc(cmd *cobra.Command, args []string) {
	version := pain001.Version(root.Message.Version)
	if root.Message.Version == "" {
		cfg, err := config.InitializeConfig()
		if err != nil {
			root.Log.Fatalf("Error loading configuration: %v", err)
		}
		version = cfg.DefaultVersion()
	}
	if !version.Valid() {
		root.Log.Fatalf("Unknown schema generation: %s", root.Message.Version)
	}

	fmt.Printf("generation:      %s\n", version)
	fmt.Printf("namespace:       %s\n", version.SchemaName())
	fmt.Printf("schema location: %s\n", version.SchemaLocation())
}
