/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command strlen measures strings the way literal.Len does: up to the first
// terminator byte. It also runs the built-in self check and an HTTP/gRPC
// server exposing the same measurement.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"dirpx.dev/solid/internal/cliconfig"
	"dirpx.dev/solid/internal/escapes"
	"dirpx.dev/solid/internal/logging"
	"dirpx.dev/solid/internal/server"
	"dirpx.dev/solid/literal"
	"dirpx.dev/solid/require"
)

const exampleUsage = `  strlen abc ""
  strlen -- check
  strlen --escapes 'a\0b'
  printf 'one\ntwo\n' | strlen
  strlen check
  strlen serve --http-addr 127.0.0.1:8080 --grpc-addr 127.0.0.1:9090`

const longHelp = `Print the length of each text up to its first NUL byte. Without arguments
every line of standard input is measured; only the line feed is stripped.

Texts that name a subcommand ("check", "serve") must follow a -- separator.`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	defer require.Guard()

	a := newApp(os.Stderr)
	if err := a.command().Execute(); err != nil {
		a.log.Error().Err(err).Msg("strlen")
		os.Exit(1)
	}
}

type app struct {
	cfg     cliconfig.Config
	cfgPath string
	null    bool
	stderr  io.Writer
	log     zerolog.Logger
}

func newApp(stderr io.Writer) *app {
	return &app{
		cfg:    cliconfig.DefaultConfig(),
		stderr: stderr,
		log:    zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger(),
	}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:               "strlen [text...]",
		Short:             "Print the length of each text up to its first NUL byte",
		Long:              longHelp,
		Example:           exampleUsage,
		Args:              cobra.ArbitraryArgs,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.configure,
		RunE:              a.runLength,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.strlen/config.toml)")
	pf.StringVar(&a.cfg.LogLevel, cliconfig.FlagLogLevel, a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.cfg.LogFormat, cliconfig.FlagLogFormat, a.cfg.LogFormat, "log format (console or json)")
	pf.BoolVar(&a.cfg.NoColor, cliconfig.FlagNoColor, a.cfg.NoColor, "disable colored diagnostics")
	pf.BoolVar(&a.cfg.Escapes, cliconfig.FlagEscapes, a.cfg.Escapes, `decode backslash escapes such as \0 and \x41 in the input`)

	root.Flags().BoolVar(&a.null, "null", false, "measure the null literal (fails the precondition check)")

	check := &cobra.Command{
		Use:   "check",
		Short: "Run the built-in length scenarios",
		Args:  cobra.NoArgs,
		RunE:  a.runCheck,
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the length endpoint over HTTP and gRPC",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	serve.Flags().StringVar(&a.cfg.HTTPAddr, cliconfig.FlagHTTPAddr, a.cfg.HTTPAddr, "HTTP listen address (empty disables)")
	serve.Flags().StringVar(&a.cfg.GRPCAddr, cliconfig.FlagGRPCAddr, a.cfg.GRPCAddr, "gRPC listen address (empty disables)")

	root.AddCommand(check, serve)
	return root
}

// configure resolves the configuration (defaults < file < env < flags),
// builds the logger and installs the process-wide failure handler.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		if p := cliconfig.DefaultConfigPath(); p != "" && cliconfig.FileExists(p) {
			cfgFile = p
		}
	}
	src, err := cliconfig.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cliconfig.Apply(&a.cfg, src, changed)
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(a.stderr, a.cfg)
	if err != nil {
		return err
	}
	a.log = log
	opts := []require.Option{require.WithLogger(log)}
	if a.cfg.NoColor {
		opts = append(opts, require.WithColor(false))
	}
	require.Install(opts...)
	a.log.Debug().Interface("config", a.cfg).Str("file", cfgFile).Msg("configuration")
	return nil
}

func (a *app) runLength(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if a.null {
		_, err := fmt.Fprintf(out, "%d\n", literal.Len(literal.Null()))
		return err
	}
	if len(args) > 0 {
		for _, text := range args {
			if err := a.measure(out, text); err != nil {
				return err
			}
		}
		return nil
	}

	rd := bufio.NewReader(cmd.InOrStdin())
	for {
		line, err := rd.ReadString('\n')
		if line != "" {
			if merr := a.measure(out, strings.TrimSuffix(line, "\n")); merr != nil {
				return merr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// measure prints the length of text followed by text as given.
func (a *app) measure(w io.Writer, text string) error {
	s := text
	if a.cfg.Escapes {
		var err error
		if s, err = escapes.Decode(text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d\t%s\n", literal.Len(literal.FromString(s)), text)
	return err
}

var scenarios = []struct {
	text string
	want int
	desc string
}{
	{"", 0, `Len("") == 0`},
	{"abc", 3, `Len("abc") == 3`},
	{"a\x00b", 1, `Len("a\0b") == 1`},
}

// runCheck runs the fixed scenarios. A wrong length raises through
// require.That and ends the process via the handler installed in main.
func (a *app) runCheck(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, sc := range scenarios {
		require.That(literal.Len(literal.FromString(sc.text)) == sc.want, sc.desc)
		if _, err := fmt.Fprintf(out, "ok\t%s\n", sc.desc); err != nil {
			return err
		}
	}

	f := require.Catch(func() { literal.Len(literal.Null()) })
	require.That(f != nil, "Len(null) raises")
	_, err := fmt.Fprintf(out, "ok\tLen(null) raises (%s)\n", f)
	return err
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx, a.cfg, a.log)
}
