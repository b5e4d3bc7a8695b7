// Command lexcore is a thin demonstration driver for the lexcore library:
// it loads a YAML rule set, compiles each rule to a minimized DFA, and
// tokenizes stdin (or a file) under the resulting longest-match scanner.
// It sits above the core library the same way cow-lang-go/lang/cmd sits
// above cow-lang-go/tooling — it is a consumer of the public API, not part
// of the specified lexical-analysis toolkit itself.
package main

import (
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lexcore",
		Short: "Compile regex rule sets and tokenize text with them",
	}
	root.AddCommand(newTokenizeCmd())
	return root
}

func newTokenizeCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "tokenize [input-file]",
		Short: "Tokenize input under a YAML rule set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			return runTokenize(rulesPath, input)
		},
	}
	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "path to a YAML rule-set file (required)")
	cmd.MarkFlagRequired("rules")
	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runTokenize(rulesPath, input string) error {
	file, err := loadRuleSetFile(rulesPath)
	if err != nil {
		return err
	}

	tz, err := buildTokenizer(file)
	if err != nil {
		return err
	}

	gologger.Info().Msgf("compiled %d rule(s) from %s", len(file.Rules), rulesPath)

	tokens, err := tz.Tokenize(input)
	if err != nil {
		gologger.Error().Msgf("tokenization failed: %s", err)
		return err
	}

	for _, tok := range tokens {
		gologger.Info().Msgf("%s %q @%d", tok.Type, tok.Value, tok.Position)
	}
	return nil
}
