package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/podium"
	"github.com/phanxgames/podium/internal/config"
	"github.com/phanxgames/podium/internal/logging"
	"github.com/phanxgames/podium/manifest"
	"github.com/phanxgames/podium/slides"
)

type playOptions struct {
	query      string
	slide      int
	section    string
	fullscreen bool
	script     string
	pdf        string
	transition string
	noControls bool
}

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play [deck-id | manifest.yaml]",
		Short: "Open a deck, or the picker when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			app, err := buildApp(cmd.Context(), ctx, cfg, logger, target, opts, nil)
			if err != nil {
				return err
			}
			return podium.Run(podium.RunConfig{
				Title:      cfg.Window.Title,
				Width:      cfg.Window.Width,
				Height:     cfg.Window.Height,
				Fullscreen: cfg.Window.Fullscreen || opts.fullscreen,
			}, app)
		},
	}

	cmd.Flags().StringVar(&opts.query, "query", "", "Deck selection as a URL query, e.g. '?deck=welcome&slide=3'")
	cmd.Flags().IntVar(&opts.slide, "slide", 0, "Start slide, 1-based")
	cmd.Flags().StringVar(&opts.section, "section", "", "Start at the section with this label")
	cmd.Flags().BoolVar(&opts.fullscreen, "fullscreen", false, "Start in fullscreen")
	cmd.Flags().StringVar(&opts.script, "script", "", "YAML playback script to run (kiosk mode)")
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "Play the pages of a PDF file")
	cmd.Flags().StringVar(&opts.transition, "transition", "", "Override every deck's transition: fade, slide, zoom or none")
	cmd.Flags().BoolVar(&opts.noControls, "no-controls", false, "Hide the control overlay")

	return cmd
}

// pdfDeckID is the registry id of a deck given with --pdf.
const pdfDeckID = "pdf"

// buildApp resolves the target and flags into a ready App. display nil means
// the real window.
func buildApp(ctx context.Context, cc *commandContext, cfg *config.Config, logger *slog.Logger, target string, opts playOptions, display podium.Display) (*podium.App, error) {
	var extra []*manifest.Manifest
	deckID := target
	if isManifestPath(target) {
		m, err := manifest.LoadFile(target)
		if err != nil {
			return nil, err
		}
		extra = append(extra, m)
		deckID = m.ID
	}

	srcs, err := cc.sources(ctx, extra...)
	if err != nil {
		return nil, err
	}
	if opts.pdf != "" {
		srcs = withSource(srcs, deckSource{entry: pdfEntry(opts.pdf), origin: opts.pdf})
		deckID = pdfDeckID
	}
	entries := make([]podium.Entry, len(srcs))
	for i, s := range srcs {
		entries[i] = s.entry
	}
	reg, err := podium.NewRegistry(entries...)
	if err != nil {
		return nil, fmt.Errorf("register decks: %w", err)
	}

	var script *podium.Script
	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		if script, err = podium.LoadScript(data); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.script, err)
		}
	}

	if deckID == "" && opts.query == "" {
		deckID = cfg.Playback.StartDeck
	}
	transition := cfg.Playback.Transition
	if opts.transition != "" {
		transition = strings.ToLower(opts.transition)
	}

	appCfg := podium.AppConfig{
		Registry:     reg,
		Query:        opts.query,
		Deck:         deckID,
		Start:        podium.OpenOptions{Slide: opts.slide - 1, Section: opts.section},
		Transition:   transition,
		HideControls: opts.noControls || !cfg.Playback.ShowControls,
		Display:      display,
		Script:       script,
		Logger:       logging.NewComponentLogger(logger, "player"),
	}
	if appCfg.Query == "" {
		appCfg.Query = podium.LocationQuery()
	}
	app, err := podium.NewApp(appCfg)
	if err != nil {
		return nil, err
	}
	logger.Info("player ready",
		slog.Int("decks", reg.Len()),
		slog.String(logging.FieldDeck, app.Loader().Current()),
	)
	return app, nil
}

func isManifestPath(target string) bool {
	ext := strings.ToLower(filepath.Ext(target))
	return ext == ".yaml" || ext == ".yml"
}

// pdfEntry plays every page of a PDF as an image slide.
func pdfEntry(path string) podium.Entry {
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return podium.Entry{
		ID:          pdfDeckID,
		Title:       title,
		Description: path,
		New: func() (*podium.Presentation, error) {
			pages, err := slides.PDFPages(slides.DefaultTheme, path, nil)
			if err != nil {
				return nil, err
			}
			return &podium.Presentation{
				Title:        title,
				Slides:       pages,
				Transition:   podium.TransitionFade,
				ShowControls: true,
			}, nil
		},
	}
}
