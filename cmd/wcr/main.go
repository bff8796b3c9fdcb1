package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/yamd1/wcr/internal/adapters/fs"
	"github.com/yamd1/wcr/internal/app"
	"github.com/yamd1/wcr/internal/cliconfig"
	"github.com/yamd1/wcr/internal/watch"
	"github.com/yamd1/wcr/pkg/log"
)

const longHelp = `Print newline, word, byte and character counts for each FILE, and a total
line if more than one FILE is specified. With no FILE, or when FILE is -,
read standard input.

Words are runs of characters separated by ASCII whitespace. Characters are
decoded UTF-8 codepoints; each byte of an invalid sequence counts as one.
With no metric flags, lines, words and bytes are printed.

Defaults can be set in $HOME/.wcr/config.toml or with WCR_* environment
variables; explicit flags always win.`

var exampleUsage = strings.TrimSpace(`
  wcr notes.txt todo.txt
  cat notes.txt | wcr -l
  wcr -lwm --watch draft.md
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
// Errors that end the run are written to stderr whatever the log level.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	exitCode := 0

	logger := log.NewZerologAdapter(stderr, cfg.Level())

	root := &cobra.Command{
		Use:           "wcr [FILE]...",
		Short:         "Print newline, word, byte and character counts for each file",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, files []string) error {
			// Config file first, then WCR_* env; both skip flags set on the command line
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			cfg.Files = files
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger = log.NewZerologAdapter(stderr, cfg.Level())
			logger.Debug("configuration", log.Any("config", cfg))

			driver := app.NewDriver(fs.NewSourceReader(stdin),
				app.WithOutput(stdout),
				app.WithErrorOutput(stderr),
				app.WithLogger(logger),
			)
			runCfg := app.Config{
				Sources:   cfg.Files,
				Selection: cfg.Selection(),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// the exit status follows the most recent count
			count := func(ctx context.Context) error {
				sum, err := driver.Run(ctx, runCfg)
				if err != nil {
					return err
				}
				exitCode = 0
				if !sum.OK() {
					exitCode = 1
				}
				return nil
			}

			if err := count(ctx); err != nil {
				return err
			}
			if !cfg.Watch {
				return nil
			}

			w, err := watch.New(cfg.Files, cfg.Debounce, count, logger)
			if err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.wcr/config.toml)")
	root.Flags().BoolVarP(&cfg.Lines, "lines", "l", cfg.Lines, "print the newline counts")
	root.Flags().BoolVarP(&cfg.Words, "words", "w", cfg.Words, "print the word counts")
	root.Flags().BoolVarP(&cfg.Bytes, "bytes", "c", cfg.Bytes, "print the byte counts")
	root.Flags().BoolVarP(&cfg.Chars, "chars", "m", cfg.Chars, "print the character counts")
	root.MarkFlagsMutuallyExclusive("bytes", "chars")

	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "recount whenever a named file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before a watch recount")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		logger.Debug("run failed", log.Err(err))
		return 1
	}
	return exitCode
}
