package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/progressus/internal/config"
	"github.com/vango-dev/progressus/internal/errors"
	"github.com/vango-dev/progressus/pkg/dom"
	"github.com/vango-dev/progressus/pkg/progress"
)

// widgetFlags are the flags shared by render and run. Set flags override
// progressus.json.
type widgetFlags struct {
	configPath string
	input      string
	selector   string
	max        string
	value      string
	text       string
	format     string
	pretty     bool
}

func (f *widgetFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "Config file (default ./"+config.ConfigFileName+" if present)")
	flags.StringVarP(&f.input, "input", "i", "", "HTML file holding the container")
	flags.StringVar(&f.selector, "selector", "", "Container selector (default "+config.DefaultSelector+")")
	flags.StringVar(&f.max, "max", "", "Upper bound (default 1)")
	flags.StringVar(&f.value, "value", "", "Starting value (default 0)")
	flags.StringVar(&f.text, "text", "", "Initial label")
	flags.StringVar(&f.format, "format", "", "Value template, e.g. \"{value}/{max} ({percentage}%)\"")
	flags.BoolVar(&f.pretty, "pretty", false, "Indent output and show hydration IDs")
}

// loadConfig reads the config file and applies flag overrides.
func (f *widgetFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = f.input
	}
	if flags.Changed("selector") {
		cfg.Selector = f.selector
	}
	if flags.Changed("max") {
		cfg.Max = f.max
	}
	if flags.Changed("value") {
		cfg.Value = f.value
	}
	if flags.Changed("text") {
		cfg.Text = f.text
	}
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	if flags.Changed("pretty") {
		cfg.Pretty = f.pretty
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is a document with one widget bound into it.
type session struct {
	doc       *dom.Document
	widget    *progress.Widget
	container *dom.Element
	fromInput bool
}

// newSession loads or builds the document and initializes the widget.
func newSession(cfg *config.Config, opts ...progress.Option) (*session, error) {
	s := &session{}

	if path := cfg.InputPath(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.New("P020").
				WithDetail("Cannot open input document " + path).
				Wrap(err)
		}
		defer f.Close()

		if s.doc, err = dom.Parse(f); err != nil {
			return nil, errors.New("P021").WithDetail(err.Error()).Wrap(err)
		}
		s.fromInput = true
		warnAmbiguous(s.doc, cfg.Selector)
	} else {
		s.doc = dom.New()
		container, err := containerFor(s.doc, cfg.Selector)
		if err != nil {
			return nil, err
		}
		s.doc.Body().AppendChild(container)
	}

	opts = append(cfg.Options(), opts...)
	opts = append(opts, progress.WithLogger(slog.Default()))

	w, err := progress.Init(s.doc, cfg.Selector, opts...)
	if err != nil {
		return nil, err
	}
	s.widget = w
	s.container = w.Container().(*dom.Element)

	return s, nil
}

// warnAmbiguous logs when the selector matches more than one container; the
// widget binds the first in document order.
func warnAmbiguous(doc *dom.Document, selector string) {
	matches, err := doc.QueryAll(selector)
	if err != nil || len(matches) < 2 {
		return
	}
	slog.Warn("selector matches several containers, binding the first",
		"selector", selector, "matches", len(matches))
}

// html renders the whole input document, or just the container when the
// document was built for it.
func (s *session) html(pretty bool) (string, error) {
	var (
		out string
		err error
	)
	switch {
	case s.fromInput && pretty:
		out, err = s.doc.Pretty()
	case s.fromInput:
		out, err = s.doc.HTML()
	case pretty:
		out, err = s.container.Pretty()
	default:
		out, err = s.container.OuterHTML()
	}
	return strings.TrimSuffix(out, "\n"), err
}

// containerFor creates an element the selector matches on its own, such as
// ".abc", "#upload" or "section.job.active".
func containerFor(doc *dom.Document, selector string) (*dom.Element, error) {
	el, err := doc.NewElementFor(selector)
	if err != nil {
		return nil, errors.New("P001").
			WithInput(selector).
			WithDetail("Without --input the container is created from the selector, which must be a tag, #id and .class compound.").
			WithSuggestion("Use a selector like \".progress\" or pass --input page.html").
			Wrap(err)
	}
	return el, nil
}
