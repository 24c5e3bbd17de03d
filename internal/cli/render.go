package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/printgraph/internal/demo"
	pgerrors "github.com/matzehuels/printgraph/pkg/errors"
	"github.com/matzehuels/printgraph/pkg/observability"
	"github.com/matzehuels/printgraph/pkg/printgraph"
	"github.com/matzehuels/printgraph/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	indent   int    // columns per depth level
	format   string // output format: text, dot, svg
	output   string // output file path; empty writes to stdout
	color    string // color mode for text output: auto, always, never
	detailed bool   // add key and depth to DOT labels
}

// renderCommand creates the render command for printing a sample graph.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [sample]",
		Short: "Render a sample graph as a tree, DOT, or SVG",
		Long: `Render a sample graph.

The default text format prints the graph as an indented tree. Each node is
expanded once; later occurrences are printed as back-references (-->) so
cyclic graphs terminate.

Run 'printgraph list' to see the available samples. Without an argument on
an interactive terminal, a picker is shown.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSampleNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.applyConfig(cmd, &opts); err != nil {
				return err
			}
			if err := opts.validate(); err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				picked, err := c.pickInteractive(cmd.Context())
				if err != nil {
					return err
				}
				name = picked
			}
			return c.runRender(cmd.Context(), name, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.indent, "indent", "i", printgraph.DefaultIndentWidth, "columns per depth level")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text (default), dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.color, "color", colorAuto, "colorize text output: auto, always, never")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show key and depth in DOT/SVG labels")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(validFormats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(validColorModes, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// applyConfig fills every flag the user did not set from the config file.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *renderOpts) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("indent") {
		opts.indent = cfg.IndentWidth
	}
	if !flags.Changed("format") {
		opts.format = cfg.Format
	}
	if !flags.Changed("color") {
		opts.color = cfg.Color
	}
	if !flags.Changed("detailed") {
		opts.detailed = cfg.Detailed
	}
	return nil
}

// validate checks flag values before any rendering starts.
func (o renderOpts) validate() error {
	po := printgraph.Options{IndentWidth: o.indent}
	po.SetDefaults()
	if err := po.Validate(); err != nil {
		return err
	}
	if err := validateFormat(o.format); err != nil {
		return err
	}
	if err := validateColor(o.color); err != nil {
		return err
	}
	if o.output != "" {
		return pgerrors.ValidateOutputPath(o.output)
	}
	return nil
}

// pickInteractive asks for a sample when stdin and stderr are terminals.
func (c *CLI) pickInteractive(ctx context.Context) (string, error) {
	if !isTerminal(os.Stdin) || !isTerminal(c.stderr) {
		return "", pgerrors.New(pgerrors.ErrCodeInvalidInput,
			"sample name required (run '%s list' to see samples)", appName)
	}
	return pickSample(ctx, demo.All(), c.stderr)
}

// lookupSample resolves a sample by name.
func lookupSample(name string) (demo.Sample, error) {
	if err := pgerrors.ValidateSampleName(name); err != nil {
		return demo.Sample{}, err
	}
	s, ok := demo.Lookup(name)
	if !ok {
		return demo.Sample{}, pgerrors.New(pgerrors.ErrCodeSampleNotFound,
			"unknown sample %q (available: %s)", name, strings.Join(demo.Names(), ", "))
	}
	return s, nil
}

// runRender renders the named sample and writes it to the configured output.
func (c *CLI) runRender(ctx context.Context, name string, opts renderOpts) error {
	s, err := lookupSample(name)
	if err != nil {
		return err
	}
	return c.renderTo(ctx, s, opts)
}

// renderTo renders s and writes it to the configured output.
func (c *CLI) renderTo(ctx context.Context, s demo.Sample, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Rendering %s as %s", s.Name, opts.format)

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, s.Name, opts.format)
	start := time.Now()

	data, err := c.renderSample(ctx, s, opts)
	hooks.OnRenderComplete(ctx, s.Name, opts.format, strings.Count(string(data), "\n"), time.Since(start), err)
	if err != nil {
		return renderFailure(s.Name, err)
	}

	return c.writeOutput(ctx, opts.output, data)
}

// renderFailure annotates a render error with the sample name. Errors that
// carry no code come from the sample's capability set and are reported as
// capability violations.
func renderFailure(name string, err error) error {
	if pgerrors.GetCode(err) != "" || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return pgerrors.Wrap(pgerrors.ErrCodeCapability, err, "render %s", name)
}

// renderSample dispatches on the output format.
func (c *CLI) renderSample(ctx context.Context, s demo.Sample, opts renderOpts) ([]byte, error) {
	switch opts.format {
	case formatText:
		po := printgraph.Options{IndentWidth: opts.indent}
		po.SetDefaults()
		text, err := s.Text(po)
		if err != nil {
			return nil, err
		}
		if opts.output == "" && useColor(opts.color, c.stdout) {
			text = newTreeStyle(c.stdout, termenv.ANSI256, po.IndentWidth).Render(text)
		}
		return []byte(text), nil

	case formatDOT:
		dot, err := s.DOT(nodelink.Options{Detailed: opts.detailed})
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil

	case formatSVG:
		return c.renderSVG(ctx, s, opts)

	default:
		return nil, pgerrors.New(pgerrors.ErrCodeUnsupported, "unknown format: %s", opts.format)
	}
}

// renderSVG runs Graphviz behind a spinner when stderr is a terminal.
func (c *CLI) renderSVG(ctx context.Context, s demo.Sample, opts renderOpts) ([]byte, error) {
	dot, err := s.DOT(nodelink.Options{Detailed: opts.detailed})
	if err != nil {
		return nil, err
	}

	prog := newProgress(loggerFromContext(ctx))
	var spinner *Spinner
	if isTerminal(c.stderr) {
		spinner = newSpinnerWithContext(ctx, c.stderr, "Rendering SVG...")
		spinner.Start()
	}

	svg, err := nodelink.RenderSVG(dot)
	if spinner != nil {
		switch {
		case err != nil:
			spinner.StopWithError("SVG rendering failed")
		case spinner.Cancelled():
			spinner.Stop()
		default:
			spinner.StopWithSuccess("Rendered SVG")
		}
	}
	if err != nil {
		return nil, pgerrors.Wrap(pgerrors.ErrCodeInternal, err, "graphviz")
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	prog.done("Rendered SVG")
	return svg, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func (c *CLI) writeOutput(ctx context.Context, path string, data []byte) error {
	hooks := observability.Output()

	out, err := c.openOutput(path)
	if err != nil {
		hooks.OnOutputError(ctx, path, err)
		return err
	}

	_, werr := out.Write(data)
	cerr := out.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		hooks.OnOutputError(ctx, path, werr)
		return fmt.Errorf("write %s: %w", displayPath(path), werr)
	}

	hooks.OnOutputWritten(ctx, path, len(data))
	if path != "" && isTerminal(c.stderr) {
		printFile(c.stderr, path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns the CLI's stdout wrapped in nopCloser.
func (c *CLI) openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{c.stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, pgerrors.Wrap(pgerrors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return f, nil
}

func displayPath(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

// completeSampleNames offers sample names for shell completion.
func completeSampleNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, s := range demo.All() {
		if strings.HasPrefix(s.Name, toComplete) {
			out = append(out, s.Name+"\t"+s.Description)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
