package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/card-battle-sim/internal/config"
	"github.com/KirkDiggler/card-battle-sim/internal/dice"
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
	"github.com/KirkDiggler/card-battle-sim/internal/errors"
	"github.com/KirkDiggler/card-battle-sim/internal/events"
	"github.com/KirkDiggler/card-battle-sim/internal/logging"
	"github.com/KirkDiggler/card-battle-sim/internal/repositories/battles"
	"github.com/KirkDiggler/card-battle-sim/internal/services/simulation"
	"github.com/KirkDiggler/card-battle-sim/internal/targeting"
)

func main() {
	executorColumn := flag.Int("executor", 2, "formation column of the acting home card")
	kill := flag.String("kill", "", "comma separated away columns to knock out before resolving")
	flag.Parse()

	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, os.Stderr, cfg.Log.Console)
	if envLoaded {
		logger.Debug().Msg("Loaded .env file")
	}

	ctx := context.Background()

	repo, closeRepo := newRepository(ctx, cfg, &logger)
	defer closeRepo()

	var roller dice.Roller
	if cfg.Targeting.Seed != 0 {
		roller = dice.NewSeededRoller(cfg.Targeting.Seed)
	} else {
		roller = dice.NewRandomRoller()
	}

	bus := events.NewBus(&logger)
	bus.Subscribe(events.EventTypeCardDefeated, &defeatLogger{logger: &logger})

	svc := simulation.NewService(&simulation.ServiceConfig{
		Repository: repo,
		Resolver: targeting.NewResolver(&targeting.ResolverConfig{
			Roller:         roller,
			RandomSampling: cfg.Targeting.RandomSampling,
		}),
		Logger:     &logger,
		EventBus:   bus,
		BatchLimit: cfg.Targeting.BatchLimit,
	})

	b, err := svc.CreateBattle(ctx, demoBattle())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create battle")
	}

	for _, col := range parseColumns(*kill, &logger) {
		target := b.EnemyAt(b.Cards[b.Players[0].ID][0], col)
		if target == nil {
			continue
		}
		if _, err := svc.ApplyDamage(ctx, b.ID, target.ID, target.HP); err != nil {
			logger.Fatal().Err(err).Str("card_id", target.ID).Msg("Failed to apply damage")
		}
	}

	home := b.Cards[b.Players[0].ID]
	if *executorColumn < 0 || *executorColumn >= len(home) || home[*executorColumn] == nil {
		logger.Fatal().Int("column", *executorColumn).Msg("No home card at executor column")
	}
	executor := home[*executorColumn]

	fmt.Printf("battle %s, executor %s (column %d)\n", b.ID, executor.Name, executor.FormationColumn)
	for _, id := range targeting.KnownRangeIDs() {
		out, err := svc.ResolveTargets(ctx, &simulation.ResolveInput{
			BattleID:   b.ID,
			ExecutorID: executor.ID,
			RangeID:    id,
		})
		switch {
		case errors.IsNotImplemented(err):
			fmt.Printf("%3d  %-12s  not implemented\n", id, errors.GetMeta(err)["kind"])
		case err != nil:
			logger.Fatal().Err(err).Int("range_id", id).Msg("Failed to resolve targets")
		default:
			fmt.Printf("%3d  %-12s  %s\n", id, out.Kind, strings.Join(cardNames(out.Targets), ", "))
		}
	}
}

// newRepository uses Redis when REDIS_URL is reachable and falls back to memory otherwise
func newRepository(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (battles.Repository, func()) {
	if cfg.Redis.URL == "" {
		logger.Info().Msg("No REDIS_URL found, using in-memory repository")
		return battles.NewInMemoryRepository(), func() {}
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to parse Redis URL, falling back to in-memory repository")
		return battles.NewInMemoryRepository(), func() {}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Msg("Failed to connect to Redis, falling back to in-memory repository")
		_ = client.Close()
		return battles.NewInMemoryRepository(), func() {}
	}

	logger.Info().Str("addr", opts.Addr).Msg("Using Redis for battle storage")
	repo := battles.NewRedisRepository(&battles.RedisRepoConfig{
		Client:    client,
		BattleTTL: cfg.Redis.BattleTTL,
	})

	return repo, func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing Redis connection")
		}
	}
}

func demoBattle() *simulation.CreateBattleInput {
	side := func(name string, formation battle.FormationType, cardNames ...string) *simulation.SideInput {
		cards := make([]*simulation.CardInput, 0, len(cardNames))
		for col, n := range cardNames {
			cards = append(cards, &simulation.CardInput{Name: n, Column: col, MaxHP: 1000})
		}
		return &simulation.SideInput{PlayerName: name, Formation: formation, Cards: cards}
	}

	return &simulation.CreateBattleInput{
		Home: side("Home", battle.FormationSkewed, "Lancer", "Archer", "Knight", "Cleric", "Mage"),
		Away: side("Away", battle.FormationArch, "Goblin", "Orc", "Troll", "Imp", "Wraith"),
	}
}

func parseColumns(s string, logger *zerolog.Logger) []int {
	var cols []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var col int
		if _, err := fmt.Sscanf(part, "%d", &col); err != nil {
			logger.Fatal().Str("value", part).Msg("Invalid column")
		}
		cols = append(cols, col)
	}
	return cols
}

func cardNames(cards []*battle.Card) []string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Name)
	}
	return names
}

// defeatLogger reports knocked out cards
type defeatLogger struct {
	logger *zerolog.Logger
}

func (l *defeatLogger) ID() string    { return "defeat-logger" }
func (l *defeatLogger) Priority() int { return events.PriorityPostCalculation }

func (l *defeatLogger) HandleEvent(e events.Event) error {
	l.logger.Info().
		Str("battle_id", e.GetBattleID()).
		Str("card", e.GetActor().Name).
		Int("column", e.GetActor().FormationColumn).
		Msg("Card defeated")
	return nil
}
