// Package chunkstartup attaches the "startup chunk dependencies" runtime
// module to every chunk whose entry point other chunks depend on.
//
// The host supplies the chunks of a build, a DependencyQuery answering which
// chunks depend on a chunk's entry point and a CodeSink receiving the
// generated runtime modules:
//
//	p, err := chunkstartup.New(chunkstartup.Options{Target: startup.TargetNode})
//	if err != nil {
//		return err
//	}
//	var modules chunkstartup.Collector
//	n, err := p.Apply(ctx, graph.Chunks(), graph, &modules)
package chunkstartup

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	"goa.design/chunkstartup/chunk"
	"goa.design/chunkstartup/codegen/ir"
	"goa.design/chunkstartup/codegen/jscheck"
	"goa.design/chunkstartup/codegen/jstemplate"
	"goa.design/chunkstartup/codegen/startup"
	"goa.design/chunkstartup/runtime/globals"
	"goa.design/chunkstartup/runtime/telemetry"
)

// ModuleName is the name of the generated runtime module.
const ModuleName = "startup chunk dependencies"

const (
	metricModules  = "startup_chunk_dependencies.modules"
	metricGenerate = "startup_chunk_dependencies.generate"
)

type (
	// DependencyQuery answers which chunks depend on a chunk's entry point.
	DependencyQuery interface {
		// HasEntryDependentChunks reports whether c gets a runtime module.
		HasEntryDependentChunks(c *chunk.Chunk) bool
		// EntryDependentChunks returns the chunks whose entry point depends
		// on c, in the order their loads must be issued.
		EntryDependentChunks(c *chunk.Chunk) []*chunk.Chunk
	}

	// CodeSink receives generated runtime modules.
	CodeSink interface {
		AddRuntimeModule(ctx context.Context, c *chunk.Chunk, m *RuntimeModule) error
	}

	// CodeSinkFunc adapts a function to CodeSink.
	CodeSinkFunc func(ctx context.Context, c *chunk.Chunk, m *RuntimeModule) error

	// RuntimeModule is the generated runtime module of a chunk.
	RuntimeModule struct {
		// Name is always ModuleName.
		Name string
		// Chunk is the instrumented chunk.
		Chunk *chunk.Chunk
		// Requirements are the runtime requirements the chunk acquires.
		Requirements []string
		// Strategy is the loading strategy used by Source.
		Strategy ir.Strategy
		// Dependents holds the rendered ids of the entry-dependent chunks in
		// load order.
		Dependents []chunk.ID
		// Source is the generated code.
		Source string
	}

	// Options configures a Plugin.
	Options struct {
		// AsyncChunkLoading selects promise based loading of dependent
		// chunks. Nil means true.
		AsyncChunkLoading *bool
		// Target is the deployment target; TargetNode renders ids as relative
		// paths.
		Target startup.Target
		// Symbols overrides runtime symbol names. Empty fields keep the
		// defaults.
		Symbols globals.Symbols
		// Environment describes the output environment.
		Environment jstemplate.Environment
		// Verify parses every generated module and fails on syntax errors.
		Verify bool
		// Minify strips insignificant whitespace from generated modules.
		Minify bool
		// Logger, Metrics and Tracer default to no-op implementations.
		Logger  telemetry.Logger
		Metrics telemetry.Metrics
		Tracer  telemetry.Tracer
	}

	// Plugin generates startup chunk dependencies runtime modules.
	Plugin struct {
		async   bool
		target  startup.Target
		symbols globals.Symbols
		env     jstemplate.Environment
		verify  bool
		minify  bool
		logger  telemetry.Logger
		metrics telemetry.Metrics
		tracer  telemetry.Tracer
	}
)

// AddRuntimeModule calls f.
func (f CodeSinkFunc) AddRuntimeModule(ctx context.Context, c *chunk.Chunk, m *RuntimeModule) error {
	return f(ctx, c, m)
}

// New returns a plugin configured with opts.
func New(opts Options) (*Plugin, error) {
	symbols := globals.Default().Merge(opts.Symbols)
	if err := symbols.Validate(); err != nil {
		return nil, fmt.Errorf("invalid runtime symbols: %w", err)
	}
	p := &Plugin{
		async:   true,
		target:  opts.Target,
		symbols: symbols,
		env:     opts.Environment,
		verify:  opts.Verify,
		minify:  opts.Minify,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		tracer:  opts.Tracer,
	}
	if opts.AsyncChunkLoading != nil {
		p.async = *opts.AsyncChunkLoading
	}
	if p.logger == nil {
		p.logger = telemetry.NewNoopLogger()
	}
	if p.metrics == nil {
		p.metrics = telemetry.NewNoopMetrics()
	}
	if p.tracer == nil {
		p.tracer = telemetry.NewNoopTracer()
	}
	return p, nil
}

// AsyncChunkLoading reports whether the plugin emits promise based loading.
func (p *Plugin) AsyncChunkLoading() bool {
	return p.async
}

// Module generates the runtime module of c given its entry-dependent chunks.
// Errors are only possible when verification or minification is enabled.
func (p *Plugin) Module(c *chunk.Chunk, dependents []*chunk.Chunk) (*RuntimeModule, error) {
	req := startup.Request{
		Chunk:             c,
		Dependents:        dependents,
		AsyncChunkLoading: p.async,
		Target:            p.target,
		Symbols:           p.symbols,
		Environment:       p.env,
	}
	body := startup.Plan(req)
	code := startup.Generate(req)
	if p.verify {
		if err := jscheck.Validate(code); err != nil {
			return nil, err
		}
	}
	if p.minify {
		minified, err := jscheck.Minify(code)
		if err != nil {
			return nil, err
		}
		code = minified
	}
	return &RuntimeModule{
		Name:         ModuleName,
		Chunk:        c,
		Requirements: p.symbols.Requirements(),
		Strategy:     body.Strategy,
		Dependents:   body.EnsuredIDs(),
		Source:       code,
	}, nil
}

// Apply generates a runtime module for every chunk in chunks that has
// entry-dependent chunks and hands it to sink, in chunk order. Chunks without
// entry-dependent chunks are skipped. Apply returns the number of modules
// emitted and stops at the first error.
func (p *Plugin) Apply(ctx context.Context, chunks []*chunk.Chunk, query DependencyQuery, sink CodeSink) (int, error) {
	n := 0
	for _, c := range chunks {
		if !query.HasEntryDependentChunks(c) {
			p.logger.Debug(ctx, "no entry-dependent chunks", "chunk", c.ID.String())
			continue
		}
		deps := query.EntryDependentChunks(c)
		if err := p.apply(ctx, c, deps, sink); err != nil {
			p.logger.Error(ctx, "startup chunk dependencies failed", "chunk", c.ID.String(), "err", err)
			return n, fmt.Errorf("chunk %s: %w", c.ID.Literal(), err)
		}
		n++
	}
	p.logger.Info(ctx, "startup chunk dependencies generated", "modules", n, "chunks", len(chunks))
	return n, nil
}

func (p *Plugin) apply(ctx context.Context, c *chunk.Chunk, deps []*chunk.Chunk, sink CodeSink) error {
	ctx, span := p.tracer.Start(ctx, "chunkstartup.module")
	defer span.End()
	span.AddEvent("generate", "chunk", c.ID.String(), "dependents", len(deps))

	start := time.Now()
	m, err := p.Module(c, deps)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate")
		return err
	}
	strategy := m.Strategy.String()
	p.metrics.RecordTimer(metricGenerate, time.Since(start), "strategy", strategy)

	if err := sink.AddRuntimeModule(ctx, c, m); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sink")
		return err
	}
	p.metrics.IncCounter(metricModules, 1, "strategy", strategy)
	p.logger.Debug(ctx, "runtime module added", "chunk", c.ID.String(), "strategy", strategy, "dependents", len(deps))
	span.SetStatus(codes.Ok, "")
	return nil
}
