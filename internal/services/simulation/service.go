package simulation

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
	simerr "github.com/KirkDiggler/card-battle-sim/internal/errors"
	"github.com/KirkDiggler/card-battle-sim/internal/events"
	"github.com/KirkDiggler/card-battle-sim/internal/repositories/battles"
	"github.com/KirkDiggler/card-battle-sim/internal/targeting"
	"github.com/KirkDiggler/card-battle-sim/internal/uuid"
)

const defaultBatchLimit = 4

// Service defines the simulation service interface
type Service interface {
	// CreateBattle lays out both sides and stores the battle
	CreateBattle(ctx context.Context, input *CreateBattleInput) (*battle.Battle, error)

	// GetBattle retrieves a stored battle
	GetBattle(ctx context.Context, battleID string) (*battle.Battle, error)

	// ApplyDamage hurts a card and saves the battle.
	// Listener failures after the save are logged, not returned.
	ApplyDamage(ctx context.Context, battleID, cardID string, amount int) (*battle.Card, error)

	// ResolveTargets picks the cards a skill with the given range affects
	ResolveTargets(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// ResolveBatch resolves many skills against one battle snapshot.
	// Outputs are in request order; the first failure aborts the batch.
	ResolveBatch(ctx context.Context, battleID string, requests []*TargetRequest) ([]*ResolveOutput, error)
}

// CardInput describes a card to place in a new battle
type CardInput struct {
	Name   string
	Column int
	MaxHP  int
}

// SideInput describes one player and their cards
type SideInput struct {
	PlayerName string
	Formation  battle.FormationType
	Cards      []*CardInput
}

// CreateBattleInput contains the data needed to create a battle
type CreateBattleInput struct {
	Home *SideInput
	Away *SideInput
}

// TargetRequest names an executor and the range of the skill it uses
type TargetRequest struct {
	ExecutorID string
	RangeID    int
}

// ResolveInput contains the data needed to resolve targets
type ResolveInput struct {
	BattleID   string
	ExecutorID string
	RangeID    int
}

// ResolveOutput is the outcome of a target resolution
type ResolveOutput struct {
	RangeID  int
	Kind     targeting.Kind
	Executor *battle.Card
	Targets  []*battle.Card

	// Cancelled is set when a listener blocked the skill; Targets is empty
	Cancelled bool
}

// ServiceConfig holds dependencies for the simulation service
type ServiceConfig struct {
	Repository    battles.Repository
	Resolver      *targeting.Resolver
	UUIDGenerator uuid.Generator
	Logger        *zerolog.Logger
	EventBus      *events.Bus // Optional: no events are emitted when nil
	BatchLimit    int
}

type service struct {
	repository    battles.Repository
	resolver      *targeting.Resolver
	uuidGenerator uuid.Generator
	logger        zerolog.Logger
	eventBus      *events.Bus
	batchLimit    int
}

// NewService creates a new simulation service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		resolver:   cfg.Resolver,
		eventBus:   cfg.EventBus,
		batchLimit: cfg.BatchLimit,
		logger:     zerolog.Nop(),
	}

	if svc.resolver == nil {
		svc.resolver = targeting.NewResolver(nil)
	}
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.Logger != nil {
		svc.logger = cfg.Logger.With().Str("service", "simulation").Logger()
	}
	if svc.batchLimit < 1 {
		svc.batchLimit = defaultBatchLimit
	}

	return svc
}

// CreateBattle lays out both sides and stores the battle
func (s *service) CreateBattle(ctx context.Context, input *CreateBattleInput) (*battle.Battle, error) {
	if input == nil || input.Home == nil || input.Away == nil {
		return nil, simerr.Validationf("both sides are required")
	}

	home, homeCards, err := s.buildSide(1, input.Home)
	if err != nil {
		return nil, simerr.Wrap(err, "invalid home side")
	}
	away, awayCards, err := s.buildSide(2, input.Away)
	if err != nil {
		return nil, simerr.Wrap(err, "invalid away side")
	}

	b, err := battle.NewBattle(s.uuidGenerator.New(), home, homeCards, away, awayCards)
	if err != nil {
		return nil, simerr.Wrap(err, "failed to lay out battle")
	}

	if err := s.repository.Create(ctx, b); err != nil {
		return nil, simerr.Wrap(err, "failed to store battle")
	}

	s.logger.Info().
		Str("battle_id", b.ID).
		Int("home_cards", len(homeCards)).
		Int("away_cards", len(awayCards)).
		Msg("battle created")

	return b, nil
}

func (s *service) buildSide(playerID int, side *SideInput) (*battle.Player, []*battle.Card, error) {
	if strings.TrimSpace(side.PlayerName) == "" {
		return nil, nil, simerr.Validationf("player name is required")
	}

	formation, err := battle.NewFormation(side.Formation)
	if err != nil {
		return nil, nil, err
	}

	cards := make([]*battle.Card, 0, len(side.Cards))
	for _, c := range side.Cards {
		if c == nil {
			continue
		}
		if c.MaxHP < 1 {
			return nil, nil, simerr.Validationf("card %q needs positive max HP", c.Name)
		}
		cards = append(cards, battle.NewCard(s.uuidGenerator.New(), c.Name, c.Column, c.MaxHP))
	}

	return battle.NewPlayer(playerID, side.PlayerName, formation), cards, nil
}

// GetBattle retrieves a stored battle
func (s *service) GetBattle(ctx context.Context, battleID string) (*battle.Battle, error) {
	if battleID == "" {
		return nil, simerr.Validationf("battle ID is required")
	}

	b, err := s.repository.Get(ctx, battleID)
	if err != nil {
		return nil, simerr.Wrap(err, "failed to get battle")
	}
	return b, nil
}

// ApplyDamage hurts a card and saves the battle
func (s *service) ApplyDamage(ctx context.Context, battleID, cardID string, amount int) (*battle.Card, error) {
	if amount < 0 {
		return nil, simerr.Validationf("damage cannot be negative: %d", amount)
	}

	b, err := s.GetBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}

	card, err := b.CardByID(cardID)
	if err != nil {
		return nil, err
	}

	wasDead := card.IsDead()
	card.TakeDamage(amount)

	if err := s.repository.Update(ctx, b); err != nil {
		return nil, simerr.Wrap(err, "failed to save battle")
	}

	// The damage is stored at this point, so listener errors cannot undo it
	if err := s.emit(&events.DamageAppliedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeDamageApplied, BattleID: battleID, Actor: card},
		Amount:    amount,
	}); err != nil {
		s.logger.Error().Err(err).Str("battle_id", battleID).Str("card_id", cardID).Msg("damage listener failed")
	}
	if !wasDead && card.IsDead() {
		if err := s.emit(&events.CardDefeatedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeCardDefeated, BattleID: battleID, Actor: card},
		}); err != nil {
			s.logger.Error().Err(err).Str("battle_id", battleID).Str("card_id", cardID).Msg("defeat listener failed")
		}
	}

	s.logger.Debug().
		Str("battle_id", battleID).
		Str("card_id", cardID).
		Int("damage", amount).
		Int("hp", card.HP).
		Bool("dead", card.IsDead()).
		Msg("damage applied")

	return card, nil
}

// ResolveTargets picks the cards a skill with the given range affects
func (s *service) ResolveTargets(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, simerr.Validationf("input cannot be nil")
	}

	b, err := s.GetBattle(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	return s.resolve(b, &TargetRequest{ExecutorID: input.ExecutorID, RangeID: input.RangeID})
}

// ResolveBatch resolves many skills against one battle snapshot
func (s *service) ResolveBatch(ctx context.Context, battleID string, requests []*TargetRequest) ([]*ResolveOutput, error) {
	b, err := s.GetBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}

	outputs := make([]*ResolveOutput, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if req == nil {
				return simerr.Validationf("request %d is nil", i)
			}

			out, err := s.resolve(b, req)
			if err != nil {
				return simerr.Wrapf(err, "request %d", i)
			}
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outputs, nil
}

// resolve only reads the battle, so batch goroutines can share it
func (s *service) resolve(b *battle.Battle, req *TargetRequest) (*ResolveOutput, error) {
	log := s.logger.With().
		Str("battle_id", b.ID).
		Str("executor_id", req.ExecutorID).
		Int("range_id", req.RangeID).
		Logger()

	executor, err := b.CardByID(req.ExecutorID)
	if err != nil {
		log.Warn().Err(err).Msg("executor not in battle")
		return nil, err
	}

	rng, err := s.resolver.Resolve(req.RangeID)
	if err != nil {
		log.Warn().Err(err).Msg("range not resolvable")
		return nil, simerr.Wrapf(err, "failed to resolve range for card %s", executor.ID)
	}

	out := &ResolveOutput{
		RangeID:  req.RangeID,
		Kind:     rng.Kind(),
		Executor: executor,
		Targets:  []*battle.Card{},
	}

	before := &events.BeforeTargetingEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeBeforeTargeting, BattleID: b.ID, Actor: executor},
		RangeID:   req.RangeID,
		Kind:      string(rng.Kind()),
	}
	if err := s.emit(before); err != nil {
		return nil, err
	}
	if before.IsCancelled() {
		log.Debug().Msg("targeting cancelled by listener")
		out.Cancelled = true
		return out, nil
	}

	targets, err := rng.Targets(b, executor)
	if err != nil {
		log.Warn().Err(err).Str("kind", string(rng.Kind())).Msg("target selection failed")
		return nil, simerr.Wrapf(err, "failed to select targets for card %s", executor.ID)
	}

	after := &events.AfterTargetingEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAfterTargeting, BattleID: b.ID, Actor: executor},
		RangeID:   req.RangeID,
		Kind:      string(rng.Kind()),
		Targets:   targets,
	}
	if err := s.emit(after); err != nil {
		return nil, err
	}
	out.Targets = liveCards(after.Targets)

	log.Debug().
		Str("kind", string(rng.Kind())).
		Int("targets", len(out.Targets)).
		Msg("targets resolved")

	return out, nil
}

// liveCards drops nil and dead cards a listener may have put in the list
func liveCards(cards []*battle.Card) []*battle.Card {
	out := make([]*battle.Card, 0, len(cards))
	for _, c := range cards {
		if c != nil && !c.IsDead() {
			out = append(out, c)
		}
	}
	return out
}

func (s *service) emit(event events.Event) error {
	if s.eventBus == nil {
		return nil
	}
	if err := s.eventBus.Emit(event); err != nil {
		return simerr.Wrapf(err, "failed to emit %s", event.GetType())
	}
	return nil
}
