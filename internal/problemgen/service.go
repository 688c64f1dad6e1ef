package problemgen

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Service validates and retries generated problems. It is safe for
// concurrent use.
type Service struct {
	config     Config
	generators map[Kind]Generator
	logger     *slog.Logger
}

// NewService creates a Service. A nil logger discards all output.
func NewService(cfg Config, logger *slog.Logger) *Service {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{config: cfg, generators: newGenerators(cfg), logger: logger}
}

// Config returns the configuration the Service was built with.
func (s *Service) Config() Config { return s.config }

// Generate returns a validated problem for req. Candidates failing a
// validator are redrawn up to MaxAttempts times, after which the kind's
// fallback is returned. Errors are only returned for invalid requests or a
// done context.
func (s *Service) Generate(ctx context.Context, req Request) (*Problem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := req.normalize()
	if err != nil {
		return nil, err
	}
	gen := s.generators[req.Kind]
	rng := NewRand(req.Seed)

	p := s.firstValid(gen, rng, req)
	if p == nil {
		s.logger.Debug("using fallback problem", "kind", req.Kind, "level", req.Level)
		p = gen.Fallback(rng, req)
	}
	p.ID = uuid.NewString()
	return p, nil
}

// firstValid returns the first candidate passing every validator, or nil.
func (s *Service) firstValid(gen Generator, rng *rand.Rand, req Request) *Problem {
	for attempt := range s.config.MaxAttempts {
		p := gen.Generate(rng, req)
		verr := s.validate(p, req)
		if verr == nil {
			return p
		}
		s.logger.Debug("problem rejected",
			"kind", req.Kind,
			"attempt", attempt+1,
			"validator", verr.Validator,
			"reason", verr.Message)
		if !verr.Retryable {
			return nil
		}
	}
	return nil
}

func (s *Service) validate(p *Problem, req Request) *ValidationError {
	for _, v := range s.config.Validators {
		if verr := v.Validate(p, req); verr != nil {
			return verr
		}
	}
	return nil
}

// GenerateBatch generates n independent problems concurrently. When
// req.Seed is set, item i is generated from DeriveSeed(seed, i), so the
// batch is reproducible.
func (s *Service) GenerateBatch(ctx context.Context, req Request, n int) ([]*Problem, error) {
	if _, err := req.normalize(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: batch size %d", ErrInvalidRequest, n)
	}
	problems := make([]*Problem, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range n {
		item := req
		if req.Seed != 0 {
			item.Seed = DeriveSeed(strconv.FormatUint(req.Seed, 10), strconv.Itoa(i))
		}
		g.Go(func() error {
			p, err := s.Generate(ctx, item)
			if err != nil {
				return err
			}
			problems[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.logger.Debug("batch generated", "kind", req.Kind, "level", req.Level, "count", n)
	return problems, nil
}
