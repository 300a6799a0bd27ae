// Command mesh-render renders a .mesh document to PNG or prints it as code.
//
//	mesh-render -in waves.mesh -out ./build -scale 2 -points
//	mesh-render -in waves.mesh -code compose
//	mesh-render -in waves.mesh -watch
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/gogpu/gg"
	"github.com/muesli/termenv"

	"github.com/ytget/mesh-designer/internal/document"
	"github.com/ytget/mesh-designer/internal/export"
	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/palette"
	"github.com/ytget/mesh-designer/internal/platform"
	"github.com/ytget/mesh-designer/internal/session"
)

// Canvas size used for Fill dimensions when no size flag is given
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Color modes for code and palette output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const codeStyle = "monokai"

// lexers maps code formats to chroma lexer names
var lexers = map[export.Format]string{
	export.FormatCompose: "kotlin",
	export.FormatGo:      "go",
	export.FormatJSON:    "json",
}

type options struct {
	in          string
	outDir      string
	code        string
	palettePath string
	color       string
	width       int
	height      int
	scale       int
	points      bool
	colors      bool
	watch       bool
	verbose     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "mesh-render:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("mesh-render", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.in, "in", "", "document to render (required)")
	fs.StringVar(&opts.outDir, "out", "", "directory for mesh-export.png (default: current directory unless -code is set)")
	fs.StringVar(&opts.code, "code", "", "print the mesh as code: compose, go or json")
	fs.StringVar(&opts.palettePath, "palette", "", "palette file (default ~/.mesh/palette.toml)")
	fs.StringVar(&opts.color, "color", ColorAuto, "colorize terminal output: auto, always or never")
	fs.IntVar(&opts.width, "width", 0, "image width for Fill documents")
	fs.IntVar(&opts.height, "height", 0, "image height for Fill documents")
	fs.IntVar(&opts.scale, "scale", export.MinScale, "pixel density multiplier (1-3)")
	fs.BoolVar(&opts.points, "points", false, "draw control point markers")
	fs.BoolVar(&opts.colors, "colors", false, "list the palette colors used by the document")
	fs.BoolVar(&opts.watch, "watch", false, "render again whenever the document changes")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.in == "" {
		fs.Usage()
		return opts, errors.New("-in is required")
	}
	switch opts.color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return opts, fmt.Errorf("unknown color mode %q", opts.color)
	}
	if opts.code != "" {
		if _, err := export.ParseFormat(opts.code); err != nil {
			return opts, err
		}
	}
	if opts.outDir == "" && opts.code == "" && !opts.colors {
		opts.outDir = "."
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	platform.SetLogger(logger)
	gg.SetLogger(logger)

	pal, err := loadPalette(opts.palettePath)
	if err != nil {
		return err
	}

	s := session.New(pal, session.Config{ShowPoints: opts.points})
	defer s.Close()
	s.SetNotifyCallback(func(n session.Notification) {
		if n.Kind == session.NotifyError {
			logger.Error(n.Message)
			return
		}
		logger.Info(n.Message)
	})

	if err := s.LoadDocument(opts.in); err != nil {
		return err
	}

	svc := export.NewService()
	if err := render(ctx, s, svc, opts, stdout, stderr); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return watch(ctx, s, svc, opts, stdout, stderr)
}

func loadPalette(path string) (*palette.Palette, error) {
	if path == "" {
		var err error
		if path, err = platform.GetPaletteFile(); err != nil {
			return nil, err
		}
	} else {
		expanded, err := platform.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}
	return palette.NewStore(path).Load()
}

// render writes everything requested by opts for the current document
func render(ctx context.Context, s *session.Session, svc export.Exporter, opts options, stdout, stderr io.Writer) error {
	snap := s.Snapshot()

	if opts.colors {
		if err := writeColors(stdout, snap, opts.color); err != nil {
			return err
		}
	}

	if opts.code != "" {
		format, _ := export.ParseFormat(opts.code)
		code, err := snap.Code(format)
		if err != nil {
			return err
		}
		if err := writeCode(stdout, code, format, opts.color); err != nil {
			return err
		}
	}

	if opts.outDir == "" {
		return nil
	}

	viewW, viewH := DefaultWidth, DefaultHeight
	if opts.width > 0 {
		viewW = opts.width
	}
	if opts.height > 0 {
		viewH = opts.height
	}
	job, err := snap.ExportJob(opts.outDir, opts.scale, viewW, viewH)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		job.Options.Width = opts.width
	}
	if opts.height > 0 {
		job.Options.Height = opts.height
	}

	task, err := svc.StartExport(job)
	if err != nil {
		return err
	}
	task, err = svc.Wait(ctx, task.ID)
	if err != nil {
		return err
	}
	if task.Status != model.TaskStatusCompleted {
		return fmt.Errorf("export %s: %s", task.Status, task.LastError)
	}
	fmt.Fprintf(stderr, "wrote %s (%d bytes, %s)\n", task.OutputPath, task.FileSize, task.GetDurationString())
	return nil
}

// watch renders again after every change of the input file until ctx ends
func watch(ctx context.Context, s *session.Session, svc export.Exporter, opts options, stdout, stderr io.Writer) error {
	changes := make(chan document.Change, 1)
	w, err := document.Watch(opts.in, document.DefaultDebounce, func(c document.Change) {
		select {
		case changes <- c:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	logger := platform.Logger()
	logger.Info("watching", "path", w.Path())
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-changes:
			if c.Removed {
				logger.Warn("document removed, waiting for it to come back", "path", c.Path)
				continue
			}
			if err := s.LoadDocument(opts.in); err != nil {
				continue
			}
			if err := render(ctx, s, svc, opts, stdout, stderr); err != nil {
				logger.Error("render failed", "error", err)
			}
		}
	}
}

// writeCode prints code, highlighted when the output supports colors
func writeCode(w io.Writer, code string, format export.Format, mode string) error {
	formatter := codeFormatter(w, mode)
	if formatter == "" {
		_, err := io.WriteString(w, code)
		return err
	}
	return quick.Highlight(w, code, lexers[format], formatter, codeStyle)
}

// codeFormatter picks the chroma terminal formatter matching the color
// profile of w; empty means plain text
func codeFormatter(w io.Writer, mode string) string {
	switch mode {
	case ColorNever:
		return ""
	case ColorAlways:
		return "terminal256"
	}

	switch colorProfile(w, mode) {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return ""
	}
}

func colorProfile(w io.Writer, mode string) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.TrueColor
	}
	return termenv.NewOutput(w).Profile
}

// writeColors lists the palette colors referenced by the document with a
// swatch in front of each
func writeColors(w io.Writer, snap session.RenderSnapshot, mode string) error {
	profile := colorProfile(w, mode)

	used := make(map[model.ColorID]bool)
	for _, id := range snap.Grid.ColorIDs() {
		used[id] = true
	}
	used[snap.Settings.BackgroundColorID] = true

	for _, c := range snap.Palette.Colors() {
		if !used[c.ID] {
			continue
		}
		swatch := profile.String("    ").Background(profile.Color("#" + c.Hex(false)))
		role := ""
		if c.ID == snap.Settings.BackgroundColorID {
			role = " background"
		}
		if _, err := fmt.Fprintf(w, "%s %3d #%s%s\n", swatch, c.ID, c.Hex(true), role); err != nil {
			return err
		}
	}
	if used[model.NoColor] {
		_, err := fmt.Fprintf(w, "%s %3s #%s transparent\n", "    ", "-", model.FormatColorHex(model.Transparent))
		return err
	}
	return nil
}
