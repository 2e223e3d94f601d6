// Package loader turns declarative descriptor documents into built, queryable
// piecewise functions.
//
// The loader is the bridge between external configuration and the core
// builders: it decodes a document, resolves every named function kind to an
// executable closure, feeds the segments to the matching builder and
// finalizes it. Documents may be read directly, from files or from any
// docstore.Store, with transparent decompression based on the document name.
package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/piecewisego"
	"github.com/hupe1980/piecewisego/codec"
	"github.com/hupe1980/piecewisego/descriptor"
	"github.com/hupe1980/piecewisego/docstore"
)

// Evaluator is the queryable result of loading a document. Both built modes
// satisfy it; which one backs a given document depends on its mode field.
type Evaluator interface {
	// Eval evaluates the piecewise function at x. The second result is
	// false when x lies outside every defined interval.
	Eval(x float64) (float64, bool)
}

// Options configures a Loader.
type Options struct {
	// Codec decodes document bytes. Defaults to codec.Default.
	Codec codec.Codec
	// Logger receives structured load/build events.
	Logger *piecewisego.Logger
	// Metrics receives load, insert, build and eval recordings.
	Metrics piecewisego.MetricsCollector
	// Concurrency bounds parallel fetches in FetchAll. Defaults to 4.
	Concurrency int
}

// Loader builds piecewise functions from descriptor documents.
// Safe for concurrent use.
type Loader struct {
	codec       codec.Codec
	logger      *piecewisego.Logger
	metrics     piecewisego.MetricsCollector
	concurrency int
}

// New creates a Loader.
func New(optFns ...func(*Options)) *Loader {
	o := Options{
		Codec:       codec.Default,
		Logger:      piecewisego.NoopLogger(),
		Metrics:     piecewisego.NoopMetricsCollector{},
		Concurrency: 4,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.Codec == nil {
		o.Codec = codec.Default
	}
	if o.Logger == nil {
		o.Logger = piecewisego.NoopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = piecewisego.NoopMetricsCollector{}
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 4
	}

	return &Loader{
		codec:       o.Codec,
		logger:      o.Logger,
		metrics:     o.Metrics,
		concurrency: o.Concurrency,
	}
}

// Load reads one document from r and builds it. name selects the
// decompression scheme by extension (.gz, .zst, .lz4); any other extension
// is read as-is.
func (l *Loader) Load(ctx context.Context, r io.Reader, name string) (Evaluator, error) {
	start := time.Now()

	ev, segments, err := l.load(r, name)

	l.metrics.RecordLoad(time.Since(start), err)
	l.logger.LogLoad(ctx, name, segments, err)

	return ev, err
}

// LoadFile reads and builds the document stored at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (Evaluator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return l.Load(ctx, f, filepath.Base(path))
}

// Fetch reads the named document from store and builds it.
func (l *Loader) Fetch(ctx context.Context, store docstore.Store, name string) (Evaluator, error) {
	start := time.Now()

	ev, segments, err := l.fetch(ctx, store, name)

	l.metrics.RecordLoad(time.Since(start), err)
	l.logger.LogLoad(ctx, name, segments, err)

	return ev, err
}

// FetchAll lists all documents under prefix and builds them concurrently.
// The result maps document name to its built function. Any single failure
// aborts the whole fetch.
func (l *Loader) FetchAll(ctx context.Context, store docstore.Store, prefix string) (map[string]Evaluator, error) {
	names, err := store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}

	results := make([]Evaluator, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, name := range names {
		g.Go(func() error {
			ev, err := l.Fetch(ctx, store, name)
			if err != nil {
				return err
			}
			results[i] = ev
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]Evaluator, len(names))
	for i, name := range names {
		out[name] = results[i]
	}

	return out, nil
}

func (l *Loader) fetch(ctx context.Context, store docstore.Store, name string) (Evaluator, int, error) {
	data, err := store.Fetch(ctx, name)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch %q: %w", name, err)
	}

	r, err := newByteReader(data, name)
	if err != nil {
		return nil, 0, fmt.Errorf("decompress %q: %w", name, err)
	}

	return l.decode(r, name)
}

func (l *Loader) load(r io.Reader, name string) (Evaluator, int, error) {
	dr, err := decompress(r, name)
	if err != nil {
		return nil, 0, fmt.Errorf("decompress %q: %w", name, err)
	}
	defer func() { _ = dr.Close() }()

	return l.decode(dr, name)
}

func (l *Loader) decode(r io.Reader, name string) (Evaluator, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read %q: %w", name, err)
	}

	var doc descriptor.Document
	if err := l.codec.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("decode %q: %w", name, err)
	}

	if err := doc.Validate(); err != nil {
		return nil, 0, fmt.Errorf("validate %q: %w", name, err)
	}

	ev, err := l.build(&doc)
	if err != nil {
		return nil, 0, fmt.Errorf("build %q: %w", name, err)
	}

	return ev, len(doc.Segments), nil
}

// build resolves every segment's function and runs the builder matching the
// document mode. Builder-side validation (overlap, duplicate lower bounds)
// applies to documents exactly as it does to code.
func (l *Loader) build(doc *descriptor.Document) (Evaluator, error) {
	opts := []piecewisego.Option{
		piecewisego.WithLogger(l.logger),
		piecewisego.WithMetricsCollector(l.metrics),
	}

	switch doc.Mode {
	case descriptor.ModeDual:
		b := piecewisego.Dual[float64, float64](opts...)
		for i, seg := range doc.Segments {
			fn, err := seg.Function.Resolve()
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			b.With(seg.Lower, *seg.Higher, fn)
		}

		pf, err := b.Build()
		if err != nil {
			return nil, err
		}
		return pf, nil

	case descriptor.ModeLower:
		b := piecewisego.Lower[float64, float64](opts...)
		for i, seg := range doc.Segments {
			fn, err := seg.Function.Resolve()
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			b.With(seg.Lower, fn)
		}

		pf, err := b.Build()
		if err != nil {
			return nil, err
		}
		return pf, nil

	default:
		// Validate rejects unknown modes before we get here.
		return nil, fmt.Errorf("%w: mode %q", descriptor.ErrInvalid, doc.Mode)
	}
}
