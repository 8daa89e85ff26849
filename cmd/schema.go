package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"github.com/tubelist-cli/tubelist/export"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON Schema of the exported document.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the exported playlist document",
	Run: func(cmd *cobra.Command, args []string) {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		handleErr(enc.Encode(documentSchema()))
	},
}

func documentSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.DoNotReference = true
	return reflector.Reflect([]*export.Video{})
}
