// SPDX-License-Identifier: MIT
// Package: batch
//
// batch.go — producing many values in parallel from one expression.
//
// Concurrency model:
//   • A compiled Pattern is bound to one Source, so every worker compiles its
//     own Pattern over the shared, read-only Alphabet.
//   • Worker w is seeded with Seed+w and owns the indexes i with i%workers == w.
//     For a fixed seed and worker count the output is therefore reproducible.
//   • Alternation groups are resolved per worker, so different workers may
//     settle on different branches.
//   • The first error cancels the remaining workers (errgroup).
//   • Every call logs under a fresh run id shared by all its diagnostics.

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mgm-tp/jfunk-sub000/alphabet"
	"github.com/mgm-tp/jfunk-sub000/pattern"
)

// MidpointLength as Request.Length generates every atom at its range midpoint.
const MidpointLength = -1

// Request describes one batch.
type Request struct {
	Expression string
	Alphabet   *alphabet.Alphabet
	Count      int      // values to generate, ignored when Negate is set
	Length     int      // total length, or MidpointLength
	Badness    int      // see pattern.BadnessNone and friends
	Negate     []string // inputs to negate instead of generating
	Seed       int64
}

func (r Request) size() int {
	if len(r.Negate) > 0 {
		return len(r.Negate)
	}

	return r.Count
}

func (r Request) validate() error {
	if r.Alphabet == nil {
		return ErrNilAlphabet
	}
	if r.Count < 0 {
		return fmt.Errorf("count=%d: %w", r.Count, ErrInvalidCount)
	}
	if r.Length < MidpointLength {
		return fmt.Errorf("length=%d: %w", r.Length, ErrInvalidLength)
	}
	if r.Badness < pattern.BadnessAll {
		return fmt.Errorf("badness=%d: %w", r.Badness, pattern.ErrBadness)
	}

	return nil
}

// Generate produces req.size() values in index order.
func Generate(ctx context.Context, req Request, opts ...Option) ([]string, error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("batch.Generate: %w", err)
	}
	cfg := newConfig(opts...)

	n := req.size()
	out := make([]string, n)
	if n == 0 {
		return out, nil
	}
	workers := min(cfg.workers, n)
	logger := cfg.logger.With(slog.String("run", uuid.NewString()))
	patternOpts := append([]pattern.Option{pattern.WithLogger(logger)}, cfg.patternOpts...)

	start := time.Now()
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			p, err := pattern.Compile(req.Expression, req.Alphabet, pattern.NewSource(req.Seed+int64(w)), patternOpts...)
			if err != nil {
				return err
			}
			for i := w; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := produce(p, req, i)
				if err != nil {
					return fmt.Errorf("value %d: %w", i, err)
				}
				out[i] = v
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("batch.Generate: %w", err)
	}

	logger.Debug("batch generated",
		slog.Int("count", n),
		slog.Int("workers", workers),
		slog.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

func produce(p *pattern.Pattern, req Request, i int) (string, error) {
	switch {
	case len(req.Negate) > 0:
		return p.Negate(req.Negate[i], req.Badness)
	case req.Length == MidpointLength:
		return p.Generate(req.Badness)
	default:
		return p.GenerateLength(req.Length, req.Badness)
	}
}
