package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/pocketrpg/battle-core/internal/content"
	"github.com/pocketrpg/battle-core/internal/engine"
	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/errors"
	"github.com/pocketrpg/battle-core/internal/orchestrators/battle"
	"github.com/pocketrpg/battle-core/internal/pkg/clock"
	"github.com/pocketrpg/battle-core/internal/pkg/idgen"
	"github.com/pocketrpg/battle-core/internal/pkg/rng"
	redisclient "github.com/pocketrpg/battle-core/internal/redis"
	"github.com/pocketrpg/battle-core/internal/repositories/players"
	"github.com/pocketrpg/battle-core/internal/repositories/sessions"
)

// simulatorConfig is read from the environment; flags override the rest
type simulatorConfig struct {
	RedisEndpoint string `env:"REDIS_ENDPOINT"`
	ContentDir    string `env:"CONTENT_DIR" envDefault:"data/content"`
	Seed          int64  `env:"SIM_SEED"`
}

var (
	simUserID  string
	simName    string
	simClass   string
	simRegion  string
	simEnemies int
	simTurns   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one encounter end to end",
	Long:  `Simulate spawns enemies for a region and plays a full battle, printing the combat log.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simUserID, "user", "sim_player", "player ID")
	simulateCmd.Flags().StringVar(&simName, "name", "Simulant", "player name used when creating a new player")
	simulateCmd.Flags().StringVar(&simClass, "class", "warrior", "player class used when creating a new player")
	simulateCmd.Flags().StringVar(&simRegion, "region", "darkwood", "region to fight in")
	simulateCmd.Flags().IntVar(&simEnemies, "enemies", 1, "enemies to spawn")
	simulateCmd.Flags().IntVar(&simTurns, "max-turns", 50, "safety cap on player turns before abandoning")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var cfg simulatorConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	slog.Info("simulation starting", "seed", cfg.Seed, "content_dir", cfg.ContentDir)

	store, err := content.LoadDir(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	playerRepo, err := buildPlayerRepo(&cfg)
	if err != nil {
		return err
	}

	svc, err := battle.NewOrchestrator(&battle.Config{
		SessionRepo: sessions.NewInMemory(),
		PlayerRepo:  playerRepo,
		Content:     store,
		Roller:      rng.NewSeeded(cfg.Seed),
		Clock:       clock.New(),
		IDGen:       idgen.NewUUID("battle"),
	})
	if err != nil {
		if fields, ok := errors.GetMeta(err)["validation_errors"]; ok {
			slog.Error("invalid orchestrator config", "fields", fields)
		}
		return err
	}

	if err := ensurePlayer(cmd, playerRepo); err != nil {
		return err
	}

	const channelID = "simulator"
	start, err := svc.StartEncounter(ctx, &battle.StartEncounterInput{
		ChannelID:  channelID,
		UserID:     simUserID,
		RegionID:   simRegion,
		EnemyCount: simEnemies,
	})
	if err != nil {
		return err
	}
	printEntries(cmd, start.Entries)

	for turn := 0; turn < simTurns; turn++ {
		action, err := chooseAction(ctx, svc, channelID)
		if err != nil {
			return err
		}
		out, err := svc.SubmitAction(ctx, &battle.SubmitActionInput{
			ChannelID: channelID,
			UserID:    simUserID,
			Action:    action,
		})
		if err != nil {
			return err
		}
		printEntries(cmd, out.Entries)
		if out.Result != engine.ResultOngoing {
			printOutcome(cmd, out.Result, out.Rewards)
			return nil
		}
	}

	abandoned, err := svc.AbandonEncounter(ctx, &battle.AbandonEncounterInput{
		ChannelID: channelID,
		UserID:    simUserID,
	})
	if err != nil {
		return err
	}
	printEntries(cmd, abandoned.Entries)
	printOutcome(cmd, abandoned.Result, nil)
	return nil
}

func buildPlayerRepo(cfg *simulatorConfig) (players.Repository, error) {
	if cfg.RedisEndpoint == "" {
		return players.NewInMemory(), nil
	}
	client, err := redisclient.NewClient(cfg.RedisEndpoint, nil)
	if err != nil {
		return nil, err
	}
	return players.NewRedis(&players.RedisConfig{Client: client})
}

// ensurePlayer creates the simulated player on first run
func ensurePlayer(cmd *cobra.Command, repo players.Repository) error {
	ctx := cmd.Context()

	_, err := repo.Get(ctx, players.GetInput{ID: simUserID})
	if err == nil {
		return nil
	}
	if !errors.IsNotFound(err) {
		return err
	}

	class := entities.Class(simClass)
	if !entities.ValidClass(class) {
		return fmt.Errorf("unknown class %q", simClass)
	}
	player := entities.NewPlayer(simUserID, simName, class)
	if _, err := repo.Save(ctx, players.SaveInput{PlayerData: players.Snapshot(player)}); err != nil {
		return err
	}
	cmd.Printf("created %s the %s\n", simName, simClass)
	return nil
}

// chooseAction plays a simple line: defend when hurt, otherwise attack
func chooseAction(ctx context.Context, svc battle.Service, channelID string) (engine.Action, error) {
	view, err := svc.GetSession(ctx, &battle.GetSessionInput{ChannelID: channelID})
	if err != nil {
		return engine.Action{}, err
	}
	for _, p := range view.Players {
		if p.ID == simUserID && p.MaxHealth > 0 && p.Health*100/p.MaxHealth < 30 {
			return engine.Action{Kind: engine.ActionDefend}, nil
		}
	}
	return engine.Action{Kind: engine.ActionAttack}, nil
}

func printEntries(cmd *cobra.Command, entries []engine.LogEntry) {
	for _, e := range entries {
		cmd.Printf("[turn %d] %s\n", e.Turn, e.Message)
	}
}

func printOutcome(cmd *cobra.Command, result engine.Result, rewards *engine.Rewards) {
	cmd.Printf("result: %s\n", result)
	if rewards == nil {
		return
	}
	cmd.Printf("earned %d experience and %d gold\n", rewards.Experience, rewards.Gold)
	for _, drop := range rewards.Drops {
		cmd.Printf("loot: %dx %s\n", drop.Quantity, drop.ItemID)
	}
}
