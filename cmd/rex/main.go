// Command rex renders and applies a catalogue of patterns built with the rex
// combinators.
//
// Usage:
//
//	rex list
//	rex render NAME
//	rex match [-i] [-format text|json] NAME [FILE...]
//
// match reads standard input when no file is given and exits 0 when at least
// one line matched, 1 when none did and 2 on error.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"go.dw1.io/rex"
	"go.dw1.io/rex/internal/input"
	"go.dw1.io/rex/internal/json"
	"go.dw1.io/rex/regexp"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, "rex:", err)
		return exitError
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Str("cmd", "rex").
		Logger()

	if len(args) == 0 {
		usage(stderr)
		return exitError
	}

	switch args[0] {
	case "list":
		for _, name := range catalogNames() {
			fmt.Fprintf(stdout, "%s\t%s\n", name, catalog[name]())
		}
		return exitMatch
	case "render":
		if len(args) != 2 {
			usage(stderr)
			return exitError
		}
		e, err := lookup(args[1])
		if err != nil {
			log.Error().Err(err).Msg("render")
			return exitError
		}
		fmt.Fprintln(stdout, e)
		return exitMatch
	case "match":
		return runMatch(args[1:], cfg, log, stdin, stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitMatch
	default:
		log.Error().Str("subcommand", args[0]).Msg("unknown subcommand")
		usage(stderr)
		return exitError
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: rex list | rex render NAME | rex match [-i] [-format text|json] NAME [FILE...]")
	fmt.Fprintln(w, "patterns:", strings.Join(catalogNames(), ", "))
}

func lookup(name string) (*rex.Expr, error) {
	build, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", name)
	}

	return build(), nil
}

type record struct {
	File  string     `json:"file"`
	Line  int        `json:"line"`
	Match *rex.Match `json:"match"`
}

func runMatch(args []string, cfg config, log zerolog.Logger, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("match", flag.ContinueOnError)
	flags.SetOutput(stderr)
	ignoreCase := flags.Bool("i", cfg.IgnoreCase, "match case-insensitively")
	format := flags.String("format", cfg.Format, "output format: text or json")
	if err := flags.Parse(args); err != nil {
		return exitError
	}

	if *format != "text" && *format != "json" {
		log.Error().Str("format", *format).Msg("unsupported output format")
		return exitError
	}
	if flags.NArg() == 0 {
		usage(stderr)
		return exitError
	}

	e, err := lookup(flags.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("match")
		return exitError
	}
	if *ignoreCase {
		e = e.IgnoreCase()
	}

	re, err := e.Compile()
	if err != nil {
		log.Error().Err(err).Str("pattern", e.Render()).Msg("compile")
		return exitError
	}
	construct, _ := regexp.Fallback(re.String())
	log.Debug().
		Str("pattern", re.String()).
		Stringer("backend", re.Backend()).
		Str("fallback", construct).
		Msg("compiled")

	enc := json.NewEncoder(stdout)
	emit := func(src string, n int, m *rex.Match) error {
		if *format == "json" {
			return enc.Encode(record{File: src, Line: n, Match: m})
		}

		_, err := fmt.Fprintf(stdout, "%s:%d:%s\n", src, n, m.Text())
		return err
	}

	var sources []*input.Source
	if flags.NArg() == 1 {
		sources = append(sources, input.FromReader("-", stdin))
	}
	for _, name := range flags.Args()[1:] {
		src, err := input.Open(name)
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("open")
			return exitError
		}
		defer src.Close()
		sources = append(sources, src)
	}

	found := false
	for _, src := range sources {
		log.Debug().Str("file", src.Name()).Bool("mapped", src.Mapped()).Msg("scanning")

		err := src.Lines(func(n int, line string) error {
			m, err := e.Match(line)
			if err != nil || m == nil {
				return err
			}

			found = true
			return emit(src.Name(), n, m)
		})
		if err != nil {
			log.Error().Err(err).Str("file", src.Name()).Msg("scan")
			return exitError
		}
	}

	if !found {
		return exitNoMatch
	}

	return exitMatch
}
