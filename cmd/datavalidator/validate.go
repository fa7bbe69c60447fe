package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/datavalidator"
	"github.com/dmitrymomot/datavalidator/pkg/rulespec"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errInvalidData = errors.New("invalid data file")

type validateOptions struct {
	dataPath   string
	rulesPath  string
	catalog    string
	singleFail bool
	format     string
	debug      bool
}

func newValidateCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a data file against a rules file",
		Long: `Validate a YAML or JSON data file against a rules file.

The rules file maps field keys ("name" or "name;Alias") to ordered lists of
checks ("type;param1;param2"). Parameters written as %field% are read from
the data file.`,
		Example: `  # Validate and print messages:
  datavalidator validate --data user.yaml --rules rules.yaml

  # Stop at the first failed check of each field, JSON output for CI:
  datavalidator validate --data user.json --rules rules.yaml --single-fail --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, stdout, stderr)
		},
	}

	cmd.Flags().StringVar(&opts.dataPath, "data", "", "Path to the data file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.rulesPath, "rules", "", "Path to the rules file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "Path to a message catalog (overrides DATAVALIDATOR_CATALOG)")
	cmd.Flags().BoolVar(&opts.singleFail, "single-fail", false, "Stop at the first failed check of each field (overrides DATAVALIDATOR_SINGLE_FAIL)")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Output format (text|json)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log at debug level and print internal diagnostics")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("rules")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions, stdout, stderr io.Writer) error {
	if opts.format != formatText && opts.format != formatJSON {
		return &exitError{code: ExitUsageError, err: fmt.Errorf("unsupported format %q", opts.format)}
	}

	cfg, err := datavalidator.LoadConfig()
	if err != nil {
		return &exitError{code: ExitUsageError, err: err}
	}
	if opts.catalog != "" {
		cfg.CatalogPath = opts.catalog
	}
	if cmd.Flags().Changed("single-fail") {
		cfg.SingleFail = opts.singleFail
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}

	data, err := loadData(opts.dataPath)
	if err != nil {
		return &exitError{code: ExitUsageError, err: err}
	}
	rules, err := rulespec.LoadRules(opts.rulesPath)
	if err != nil {
		return &exitError{code: ExitUsageError, err: err}
	}

	v, err := datavalidator.NewFromConfig(cfg, stderr)
	if err != nil {
		return &exitError{code: ExitUsageError, err: err}
	}
	v.Validate(data, rules, cfg.SingleFail)

	result := NewResult(v, rules, opts.debug)
	p := NewPrinter(stdout)
	if opts.format == formatJSON {
		if err := p.PrintJSON(result); err != nil {
			return &exitError{code: ExitUsageError, err: err}
		}
	} else {
		p.PrintResult(result)
	}

	if !result.Passed {
		return &exitError{code: ExitValidationFailed}
	}
	return nil
}

// loadData decodes a YAML or JSON mapping of field names to values.
func loadData(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(errInvalidData, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(errInvalidData, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

// fieldOrder lists the field names of rules in rule order without duplicates.
func fieldOrder(rules rulespec.Rules) []string {
	fields, _ := rules.Normalize()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
