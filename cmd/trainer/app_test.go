package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/basicstrategy/internal/config"
	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/pkg/entities"
	"github.com/fadedpez/basicstrategy/pkg/repositories/results"
)

func TestOpenRepository_Memory(t *testing.T) {
	cfg := &config.Config{StorageType: config.StorageMemory}
	repo, err := openRepository(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	defer repo.Close()

	_, ok := repo.(*results.MemoryRepository)
	assert.True(t, ok)
}

func TestOpenRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StorageType: config.StorageSQLite, DataDir: filepath.Join(t.TempDir(), "data")}
	repo, err := openRepository(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	defer repo.Close()

	record := &entities.AnswerRecord{
		ID:         "a1",
		SessionID:  "s1",
		PlayerID:   "p1",
		PlayerHand: "AS 3S",
		DealerCard: "2S",
		TableIndex: "soft:14,2",
		TableType:  "soft",
		Expected:   "Hit",
		Guess:      "Stand",
		Correct:    false,
		AnsweredAt: time.Now().UTC(),
	}
	require.NoError(t, repo.SaveAnswer(ctx, record))

	answers, err := repo.GetSessionAnswers(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, answers, 1)
}

func TestOpenRepository_UnknownStorage(t *testing.T) {
	cfg := &config.Config{StorageType: "redis"}
	_, err := openRepository(context.Background(), cfg, logging.Discard())
	assert.Error(t, err)
}

func TestCLI_Parses(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"lookup", "AS 3S", "2S", "--json"})
	require.NoError(t, err)
	assert.Equal(t, "lookup <player> <dealer>", ctx.Command())
	assert.Equal(t, "AS 3S", cli.Lookup.Player)
	assert.True(t, cli.Lookup.JSON)

	_, err = parser.Parse([]string{"--log-level", "debug", "serve", "--addr", ":9090", "--with-bot"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cli.LogLevel)
	assert.Equal(t, ":9090", cli.Serve.Addr)
	assert.True(t, cli.Serve.WithBot)
}
