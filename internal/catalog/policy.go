package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Adrianenache82/local-vibe/internal/dedup"
	"github.com/Adrianenache82/local-vibe/internal/generator"
	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var ErrGeneratorFailure = errors.New("venue generator failed")

// maxSupplementRounds bounds how often the generator is asked to cover a
// shortfall left by rejected candidates.
const maxSupplementRounds = 10

type LiveSource interface {
	SearchByCategory(ctx context.Context, category venue.Category, center venue.Coordinates, radiusMeters int) ([]venue.RawPlace, error)
	GetDetails(ctx context.Context, placeID string) (venue.RawPlace, error)
}

type SeedSource interface {
	Seeds(ctx context.Context, category venue.Category) ([]venue.Venue, error)
}

type Generator interface {
	Generate(category venue.Category, count int) ([]venue.Venue, error)
}

type PolicyConfig struct {
	Center       venue.Coordinates
	RadiusMeters int
	Quota        int
	LiveTimeout  time.Duration
	PhotoURL     func(ref string) string
	Details      func(c venue.Category, key string) venue.Details
}

// Policy assembles the catalog one category at a time: live results first,
// then seed fixtures, then generated venues until the quota is met.
type Policy struct {
	cfg        PolicyConfig
	live       LiveSource
	seeds      SeedSource
	generator  Generator
	classifier dedup.Classifier
	merger     *dedup.Merger
	logger     zerolog.Logger
}

func NewPolicy(cfg PolicyConfig, live LiveSource, seeds SeedSource, gen Generator, classifier dedup.Classifier, logger zerolog.Logger) *Policy {
	if cfg.Quota <= 0 {
		cfg.Quota = dedup.DefaultQuota
	}
	if cfg.Center.IsZero() {
		cfg.Center = venue.ServiceCenter
	}
	if cfg.Details == nil {
		cfg.Details = generator.DetailsFor
	}
	return &Policy{
		cfg:        cfg,
		live:       live,
		seeds:      seeds,
		generator:  gen,
		classifier: classifier,
		merger:     dedup.NewMerger(classifier, logger),
		logger:     logger,
	}
}

func (p *Policy) Defaults() venue.Defaults {
	return venue.Defaults{Center: p.cfg.Center, PhotoURL: p.cfg.PhotoURL, Details: p.cfg.Details}
}

// AcquireAll queries the live source for every category, hands each live
// place to the first category in canonical order that returned it, and then
// tops every category up to quota in parallel. Only generator failures are
// returned.
func (p *Policy) AcquireAll(ctx context.Context) ([]venue.Venue, error) {
	categories := venue.Categories()

	live := make([][]venue.Venue, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range categories {
		i, c := i, c
		g.Go(func() error {
			live[i] = p.liveVenues(gctx, c)
			return nil
		})
	}
	_ = g.Wait()
	claimLive(live)

	results := make([][]venue.Venue, len(categories))
	g, gctx = errgroup.WithContext(ctx)
	for i, c := range categories {
		i, c := i, c
		g.Go(func() error {
			venues, err := p.complete(gctx, c, live[i])
			if err != nil {
				return err
			}
			results[i] = venues
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := p.merger.Merge(results, p.cfg.Quota)
	p.logger.Info().Int("venues", len(all)).Msg("catalog acquired")
	return all, nil
}

// claimLive keeps every live id only in the earliest list that holds it.
func claimLive(lists [][]venue.Venue) {
	claimed := map[string]struct{}{}
	for i, list := range lists {
		kept := make([]venue.Venue, 0, len(list))
		for _, v := range list {
			if _, taken := claimed[v.ID]; taken {
				continue
			}
			claimed[v.ID] = struct{}{}
			kept = append(kept, v)
		}
		lists[i] = kept
	}
}

func (p *Policy) AcquireCategory(ctx context.Context, category venue.Category) ([]venue.Venue, error) {
	return p.complete(ctx, category, p.liveVenues(ctx, category))
}

func (p *Policy) liveVenues(ctx context.Context, category venue.Category) []venue.Venue {
	return p.merger.Merge([][]venue.Venue{p.tryLive(ctx, category)}, p.cfg.Quota)
}

// complete fills category up to quota behind live with seeds and then
// generated venues.
func (p *Policy) complete(ctx context.Context, category venue.Category, live []venue.Venue) ([]venue.Venue, error) {
	quota := p.cfg.Quota
	if len(live) >= quota {
		return live, nil
	}

	accepted := append([]venue.Venue(nil), live...)
	var supplemental []venue.Venue
	add := func(candidates []venue.Venue) {
		for _, v := range candidates {
			if len(accepted) >= quota {
				return
			}
			if v.Category != category || p.classifier.DuplicateOf(v, accepted) >= 0 {
				continue
			}
			accepted = append(accepted, v)
			supplemental = append(supplemental, v)
		}
	}

	add(p.trySeeds(ctx, category))
	for round := 0; len(accepted) < quota && round < maxSupplementRounds; round++ {
		generated, err := p.generator.Generate(category, quota-len(accepted))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrGeneratorFailure, category, err)
		}
		add(generated)
	}

	if len(accepted) < quota {
		p.logger.Warn().Str("category", string(category)).Int("venues", len(accepted)).Msg("category below quota")
	}
	p.logger.Debug().Str("category", string(category)).Int("live", len(live)).
		Int("supplemental", len(supplemental)).Msg("category acquired")
	return p.merger.Merge([][]venue.Venue{live, supplemental}, quota), nil
}

type liveResult struct {
	raw []venue.RawPlace
	err error
}

// tryLive never fails: any live source error, including a timeout, yields no venues.
func (p *Policy) tryLive(ctx context.Context, category venue.Category) []venue.Venue {
	if p.live == nil {
		return nil
	}
	if p.cfg.LiveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.LiveTimeout)
		defer cancel()
	}

	ch := make(chan liveResult, 1)
	go func() {
		raw, err := p.live.SearchByCategory(ctx, category, p.cfg.Center, p.cfg.RadiusMeters)
		ch <- liveResult{raw: raw, err: err}
	}()

	var res liveResult
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.err = ctx.Err()
	}
	if res.err != nil {
		p.logger.Warn().Err(res.err).Str("category", string(category)).Msg("live source unavailable, using generated venues")
		return nil
	}

	defaults := p.Defaults()
	venues := make([]venue.Venue, 0, len(res.raw))
	for _, raw := range res.raw {
		venues = append(venues, venue.FromRawPlace(raw, category, defaults))
	}
	return venues
}

func (p *Policy) trySeeds(ctx context.Context, category venue.Category) []venue.Venue {
	if p.seeds == nil {
		return nil
	}
	seeds, err := p.seeds.Seeds(ctx, category)
	if err != nil {
		p.logger.Warn().Err(err).Str("category", string(category)).Msg("seed fixtures unavailable")
		return nil
	}
	return seeds
}
