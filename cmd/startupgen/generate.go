package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"goa.design/chunkstartup"
	"goa.design/chunkstartup/chunk"
	"goa.design/chunkstartup/config"
	"goa.design/chunkstartup/manifest"
	"goa.design/chunkstartup/runtime/telemetry"
	"goa.design/clue/log"
)

type generateFlags struct {
	manifest string
	config   string
	out      string
	target   string
	sync     bool
	report   string
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate runtime modules for every chunk with entry-dependent chunks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("target") {
				cfg.Target = f.target
			}
			if f.sync {
				async := false
				cfg.AsyncChunkLoading = &async
			}
			ctx := log.Context(cfg.LogContext(cmd.Context()), log.WithOutput(cmd.ErrOrStderr()))
			return runGenerate(ctx, cmd, cfg, f)
		},
	}
	cmd.Flags().StringVarP(&f.manifest, "manifest", "m", "", "chunk manifest (YAML or JSON)")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "configuration file")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output directory, modules are written to stdout when empty")
	cmd.Flags().StringVar(&f.target, "target", "", `deployment target, "node" renders chunk ids as relative paths`)
	cmd.Flags().BoolVar(&f.sync, "sync", false, "load dependent chunks synchronously")
	cmd.Flags().StringVar(&f.report, "report", "", "write a JSON generation report to this file")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, f generateFlags) error {
	graph, err := manifest.Load(f.manifest)
	if err != nil {
		return err
	}
	opts := cfg.Options()
	opts.Logger = telemetry.NewClueLogger()
	opts.Metrics = telemetry.NewOTELMetrics()
	opts.Tracer = telemetry.NewOTELTracer()
	p, err := chunkstartup.New(opts)
	if err != nil {
		return err
	}

	var sink moduleSink
	if f.out != "" {
		sink = newFileSink(f.out)
	} else {
		sink = newStreamSink(cmd.OutOrStdout())
	}
	rep := newReport(f.manifest, cfg)
	recorder := chunkstartup.CodeSinkFunc(func(ctx context.Context, c *chunk.Chunk, m *chunkstartup.RuntimeModule) error {
		if err := sink.AddRuntimeModule(ctx, c, m); err != nil {
			return err
		}
		rep.add(m, sink.location(c))
		return nil
	})

	ctx = log.With(ctx, log.KV{K: "run", V: rep.RunID})
	n, err := p.Apply(ctx, graph.Chunks(), graph, recorder)
	if err != nil {
		return err
	}
	if f.report != "" {
		if err := rep.write(f.report); err != nil {
			return err
		}
	}
	if f.out != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%d module(s) written to %s\n", n, f.out)
	}
	return nil
}
