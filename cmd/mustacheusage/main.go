package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/theothertomelliott/mustacheusage"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		lengthMember string
		keepNested   bool
		includeNames bool
		extractFile  string
	)

	cmd := &cobra.Command{
		Use:          "mustacheusage <template-file>",
		Short:        "Describe how a Mustache template uses its variables",
		Long:         "mustacheusage parses a Mustache template and prints a JSON tree describing every variable the template references and the roles it is used in.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readTemplate(args[0])
			if err != nil {
				return fmt.Errorf("reading template: %w", err)
			}

			tokens, err := mustacheusage.Parse(source)
			if err != nil {
				return fmt.Errorf("parsing template: %w", err)
			}

			opts := []mustacheusage.Option{
				mustacheusage.ArrayLengthMember(lengthMember),
			}
			if keepNested {
				opts = append(opts, mustacheusage.KeepNestedNames())
			}
			if includeNames {
				opts = append(opts, mustacheusage.IncludeNames())
			}
			usage := mustacheusage.Analyze(tokens, opts...)

			var result interface{} = usage
			if extractFile != "" {
				raw, err := os.ReadFile(extractFile)
				if err != nil {
					return fmt.Errorf("reading data file: %w", err)
				}
				var data interface{}
				if err := json.Unmarshal(raw, &data); err != nil {
					return fmt.Errorf("decoding data file: %w", err)
				}
				result = mustacheusage.Extract(data, usage)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}

	cmd.Flags().StringVar(&lengthMember, "length-member", "length", "member name read as an array-length marker")
	cmd.Flags().BoolVar(&keepNested, "keep-nested", false, "record bare names where they occur instead of reusing records from enclosing scopes")
	cmd.Flags().BoolVar(&includeNames, "include-names", false, "stamp each record with its own name")
	cmd.Flags().StringVar(&extractFile, "extract", "", "JSON data file to filter down to the template's usage")

	return cmd
}

func readTemplate(path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		return string(content), err
	}
	content, err := os.ReadFile(path)
	return string(content), err
}
