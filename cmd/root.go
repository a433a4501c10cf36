package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/scanline/internal/config"
	"github.com/zjrosen/scanline/internal/log"
	"github.com/zjrosen/scanline/internal/presentation"
	"github.com/zjrosen/scanline/internal/watcher"
)

var (
	version  = "dev"
	langFile string
	jsonOut  bool
	watch    bool
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "scanline [file]",
	Short: "Tokenize source text with a configurable line scanner",
	Long: `Tokenize source text into classified, positioned tokens.

Reads from a file or stdin and prints one token per line (or JSON with
--json). The symbol table and comment markers come from a yaml language
definition (--lang); without one the built-in sample language is used.

Examples:
  # Tokenize a file with the sample language
  scanline input.src

  # Tokenize stdin
  echo '( && ) // trailing' | scanline

  # Use a custom language definition, JSON output
  scanline --lang verilog.yaml --json input.v

  # Re-tokenize on every save
  scanline --watch input.src`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&langFile, "lang", "l", "",
		"language definition file (default: built-in sample language)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to scanline.debug.log")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false,
		"emit tokens as JSON")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"rescan the input file whenever it changes")
}

// setupLogging enables the debug logger when --debug or SCANLINE_DEBUG is
// set. The returned cleanup is a no-op when logging stays off.
func setupLogging() func() {
	if !debug && os.Getenv("SCANLINE_DEBUG") == "" {
		return func() {}
	}
	cleanup, err := log.Init("scanline.debug.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open debug log: %v\n", err)
		return func() {}
	}
	return cleanup
}

// loadLanguage resolves the active language definition.
func loadLanguage() (config.Language, error) {
	if langFile == "" {
		return config.Defaults(), nil
	}
	return config.Load(langFile)
}

func runScan(cmd *cobra.Command, args []string) error {
	cleanup := setupLogging()
	defer cleanup()

	lang, err := loadLanguage()
	if err != nil {
		return err
	}

	if watch {
		if len(args) == 0 {
			return fmt.Errorf("--watch requires a file argument")
		}
		return watchAndScan(lang, args[0])
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}
	return scanOnce(lang, input)
}

// scanOnce builds a fresh scanner, scans input, and prints tokens or a
// diagnostic. A fresh scanner per scan keeps stateful matchers from leaking
// open-comment state between runs.
func scanOnce(lang config.Language, input string) error {
	s, err := lang.Build()
	if err != nil {
		return err
	}

	tokens, err := s.Scan(input)
	if err != nil {
		log.ErrorErr(log.CatScan, "Scan failed", err)
		if diagErr := presentation.NewFormatter(os.Stderr).FormatDiagnostic(err); diagErr != nil {
			return diagErr
		}
		return err
	}
	log.Debug(log.CatScan, "Scan complete", "tokens", len(tokens))

	formatter := presentation.NewFormatter(os.Stdout)
	if jsonOut {
		return formatter.FormatTokensJSON(tokens)
	}
	return formatter.FormatTokens(tokens)
}

// watchAndScan scans path now and again on every change until interrupted.
// Individual scan failures are reported but do not stop the loop.
func watchAndScan(lang config.Language, path string) error {
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return err
	}

	rescan := func() {
		data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied input path
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
			return
		}
		if err := scanOnce(lang, string(data)); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	rescan()
	log.Info(log.CatWatch, "Watching for changes", "file", path)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-onChange:
			rescan()
		case <-interrupt:
			return nil
		}
	}
}

// readInput reads the file named in args, or stdin when args is empty.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0]) //nolint:gosec // G304: user-supplied input path
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
