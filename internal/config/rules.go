package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

const (
	defaultRetention     = "720h"
	defaultPruneInterval = "24h"
)

// RulesFile is the HCL document describing table rules and history upkeep
type RulesFile struct {
	Rules   *RuleSettings    `hcl:"rules,block"`
	History *HistorySettings `hcl:"history,block"`
}

// RuleSettings selects house-rule variants of the strategy charts
type RuleSettings struct {
	NoDouble           bool `hcl:"no_double,optional"`
	NoDoubleAfterSplit bool `hcl:"no_double_after_split,optional"`
}

// HistorySettings controls how long answers are kept
type HistorySettings struct {
	Retention     string `hcl:"retention,optional"`
	PruneInterval string `hcl:"prune_interval,optional"`
}

// DefaultRulesFile returns the rules used when no file is present
func DefaultRulesFile() *RulesFile {
	return &RulesFile{
		Rules: &RuleSettings{},
		History: &HistorySettings{
			Retention:     defaultRetention,
			PruneInterval: defaultPruneInterval,
		},
	}
}

// LoadRules loads the rules file, falling back to defaults when it does not exist
func LoadRules(filename string) (*RulesFile, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultRulesFile(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var rules RulesFile
	diags = gohcl.DecodeBody(file.Body, nil, &rules)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	if rules.Rules == nil {
		rules.Rules = &RuleSettings{}
	}
	if rules.History == nil {
		rules.History = &HistorySettings{}
	}
	if rules.History.Retention == "" {
		rules.History.Retention = defaultRetention
	}
	if rules.History.PruneInterval == "" {
		rules.History.PruneInterval = defaultPruneInterval
	}

	return &rules, nil
}

// Ruleset converts the rule block into chart rule adjustments
func (r *RulesFile) Ruleset() strategy.Ruleset {
	return strategy.Ruleset{
		NoDouble:           r.Rules.NoDouble,
		NoDoubleAfterSplit: r.Rules.NoDoubleAfterSplit,
	}
}

func (c *Config) applyRules(rules *RulesFile) error {
	retention, err := time.ParseDuration(rules.History.Retention)
	if err != nil {
		return fmt.Errorf("invalid history retention %q: %w", rules.History.Retention, err)
	}
	interval, err := time.ParseDuration(rules.History.PruneInterval)
	if err != nil {
		return fmt.Errorf("invalid history prune_interval %q: %w", rules.History.PruneInterval, err)
	}

	c.Rules = rules.Ruleset()
	c.Retention = retention
	c.PruneInterval = interval
	return nil
}
