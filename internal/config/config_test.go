package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("RULES_FILE", filepath.Join(s.dir, "missing.hcl"))
	s.T().Setenv("STORAGE_TYPE", "")
	s.T().Setenv("NUM_DECKS", "")
	s.T().Setenv("SHUFFLE_SEED", "")
	s.T().Setenv("DATABASE_URL", "")
	s.T().Setenv("DATA_DIR", s.dir)
}

func (s *ConfigTestSuite) writeRules(content string) string {
	path := filepath.Join(s.dir, "rules.hcl")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))
	return path
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(StorageMemory, cfg.StorageType)
	s.Equal(6, cfg.NumDecks)
	s.False(cfg.HasSeed)
	s.Equal(strategy.Ruleset{}, cfg.Rules)
	s.Equal(720*time.Hour, cfg.Retention)
	s.Equal(24*time.Hour, cfg.PruneInterval)
	s.Equal(":8080", cfg.HTTPAddr)
	s.True(cfg.IsDevelopment())
}

func (s *ConfigTestSuite) TestLoadFromEnvironment() {
	s.T().Setenv("NUM_DECKS", "2")
	s.T().Setenv("SHUFFLE_SEED", "42")
	s.T().Setenv("STORAGE_TYPE", StorageSQLite)

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(2, cfg.NumDecks)
	s.True(cfg.HasSeed)
	s.Equal(uint64(42), cfg.ShuffleSeed)
	s.Equal(filepath.Join(s.dir, "basicstrategy.db"), cfg.SQLitePath())
}

func (s *ConfigTestSuite) TestLoadInvalid() {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "Non numeric deck count", env: map[string]string{"NUM_DECKS": "six"}},
		{name: "Too many decks", env: map[string]string{"NUM_DECKS": "9"}},
		{name: "Bad seed", env: map[string]string{"SHUFFLE_SEED": "-1"}},
		{name: "Unknown storage", env: map[string]string{"STORAGE_TYPE": "redis"}},
		{name: "Postgres without url", env: map[string]string{"STORAGE_TYPE": StoragePostgres}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			for k, v := range tc.env {
				s.T().Setenv(k, v)
			}
			_, err := Load()
			s.Error(err)
		})
	}
}

func (s *ConfigTestSuite) TestLoadRulesFile() {
	path := s.writeRules(`
rules {
  no_double_after_split = true
}

history {
  retention = "48h"
}
`)
	s.T().Setenv("RULES_FILE", path)

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(strategy.Ruleset{NoDoubleAfterSplit: true}, cfg.Rules)
	s.Equal(48*time.Hour, cfg.Retention)
	s.Equal(24*time.Hour, cfg.PruneInterval)
}

func (s *ConfigTestSuite) TestLoadRulesMissingBlocks() {
	path := s.writeRules("")

	rules, err := LoadRules(path)
	s.Require().NoError(err)
	s.Equal(strategy.Ruleset{}, rules.Ruleset())
	s.Equal("720h", rules.History.Retention)
}

func (s *ConfigTestSuite) TestLoadRulesErrors() {
	s.Run("Syntax error", func() {
		_, err := LoadRules(s.writeRules(`rules {`))
		s.Error(err)
	})

	s.Run("Unknown attribute", func() {
		_, err := LoadRules(s.writeRules(`rules { surrender = true }`))
		s.Error(err)
	})

	s.Run("Bad duration", func() {
		s.T().Setenv("RULES_FILE", s.writeRules(`history { retention = "forever" }`))
		_, err := Load()
		s.Error(err)
	})
}

func (s *ConfigTestSuite) TestValidateDiscord() {
	cfg := &Config{}
	s.Error(cfg.ValidateDiscord())

	cfg.Token = "token"
	s.Error(cfg.ValidateDiscord())

	cfg.AppID = "app"
	s.NoError(cfg.ValidateDiscord())
}
