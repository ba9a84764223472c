// core/motif/scan.go
package motif

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"nucmotif/core/nucleotide"
	"nucmotif/internal/logging"
)

// Scanner evaluates offsets of one (sequence, motif) pair on a worker pool.
// It is safe for concurrent use; it holds no per-scan state.
type Scanner struct {
	cfg Config
	log zerolog.Logger
}

// New creates a Scanner after checking c.
func New(c Config) (*Scanner, error) {
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	log := logging.Nop()
	if c.Logger != nil {
		log = *c.Logger
	}
	return &Scanner{cfg: c, log: logging.Component(log, "motif.scanner")}, nil
}

// span is an inclusive range of window offsets.
type span struct{ lo, hi int }

// errFound stops the pool once Exists has its answer.
var errFound = errors.New("motif: found")

// FindAll is the concurrent form of the package-level FindAll. Offsets are
// sorted before return. If ctx ends first the result is nil and the error is
// ctx.Err(); a partial list is never returned.
func (s *Scanner) FindAll(ctx context.Context, seq nucleotide.Sequence, m Motif) ([]int, error) {
	return s.run(ctx, seq, m, 0)
}

// Exists is the concurrent form of the package-level Exists. Workers stop as
// soon as any of them finds a match.
func (s *Scanner) Exists(ctx context.Context, seq nucleotide.Sequence, m Motif) (bool, error) {
	hits, err := s.run(ctx, seq, m, 1)
	if err != nil {
		return false, err
	}
	return len(hits) > 0, nil
}

func (s *Scanner) run(ctx context.Context, seq nucleotide.Sequence, m Motif, capHits int) ([]int, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	last := len(seq) - len(m)
	if last < 0 {
		return nil, nil
	}

	offsets := last + 1
	workers := EffectiveWorkers(s.cfg.Workers)
	chunk, warns := ComputeChunk(offsets, workers, s.cfg.ChunkSize)
	for _, w := range warns {
		logging.Warnf(s.log, s.cfg.Quiet, "%s (chunk=%d offsets=%d)", w, s.cfg.ChunkSize, offsets)
	}
	if jobsNeeded := (offsets + chunk - 1) / chunk; workers > jobsNeeded {
		workers = jobsNeeded
	}
	s.log.Debug().
		Int("offsets", offsets).
		Int("width", len(m)).
		Int("workers", workers).
		Int("chunk", chunk).
		Msg("scan start")

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan span, workers*2)
	results := make(chan []int, workers*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		for lo := 0; lo <= last; lo += chunk {
			hi := lo + chunk - 1
			if hi > last {
				hi = last
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			case jobs <- span{lo: lo, hi: hi}:
			}
		}
		return nil
	})

	// Workers
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for sp := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				hits := scanRange(seq, m, sp.lo, sp.hi, capHits)
				if len(hits) == 0 {
					continue
				}
				select {
				case results <- hits:
				case <-gctx.Done():
					return gctx.Err()
				}
				if capHits > 0 {
					return errFound
				}
			}
			return nil
		})
	}

	errc := make(chan error, 1)
	go func() {
		errc <- g.Wait()
		close(results)
	}()

	// Collector
	var out []int
	for hs := range results {
		out = append(out, hs...)
	}
	err := <-errc

	if ctxErr := ctx.Err(); ctxErr != nil {
		s.log.Debug().Err(ctxErr).Int("offsets", offsets).Msg("scan cancelled")
		return nil, ctxErr
	}
	if err != nil && !errors.Is(err, errFound) {
		return nil, err
	}
	sort.Ints(out)
	s.log.Debug().Int("offsets", offsets).Int("matches", len(out)).Msg("scan done")
	return out, nil
}
