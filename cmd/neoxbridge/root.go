package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fwojciec/neoxbridge"
	bt "github.com/fwojciec/neoxbridge/bubbletea"
	"github.com/fwojciec/neoxbridge/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "neoxbridge",
		Short:         "Conversational assistant for the Neo N3 blockchain",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runChat,
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("env-file", ".env", "dotenv file; ignored when missing")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-file", "", "write logs to this file")
	pf.String("llm-provider", "", "language model provider: openai, anthropic, gemini")
	pf.String("neo-network", "", "Neo network: mainnet, testnet")
	root.Flags().Bool("plain", false, "use a line-oriented prompt instead of the TUI")

	chat := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat (default)",
		Args:  cobra.NoArgs,
		RunE:  runChat,
	}
	chat.Flags().Bool("plain", false, "use a line-oriented prompt instead of the TUI")

	ask := &cobra.Command{
		Use:   "ask <message>",
		Short: "Answer one message and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted conversation against the demo wallet",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "neoxbridge %s\n", version)
		},
	}

	root.AddCommand(chat, ask, demo, ver)
	return root
}

// loadConfig reads configuration with the command's flags as the top layer.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")
	return config.Load(config.Sources{File: file, EnvFile: envFile, Flags: cmd.Flags()})
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

func runChat(cmd *cobra.Command, _ []string) error {
	plain, _ := cmd.Flags().GetBool("plain")
	tui := !plain && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log, tui)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signalContext(cmd)
	defer stop()

	a, err := buildAgent(ctx, cfg, logger)
	if err != nil {
		return err
	}
	s := openSession(a, cfg.Neo.PrivateKey, logger)
	logger.Info("session started", "session", s.ID, "network", a.Network(), "tui", tui)

	if !tui {
		return runREPL(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), a.Handle, s)
	}
	m := bt.New(a.Handle, s, a.Network(), neoxbridge.DefaultTheme())
	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log, false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signalContext(cmd)
	defer stop()

	a, err := buildAgent(ctx, cfg, logger)
	if err != nil {
		return err
	}
	s := openSession(a, cfg.Neo.PrivateKey, logger)
	resp := a.Handle(ctx, s, strings.Join(args, " "))
	fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
	return nil
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Transfer.Demo = true
	logger, closeLog, err := newLogger(cfg.Log, false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signalContext(cmd)
	defer stop()

	a, err := buildAgent(ctx, cfg, logger)
	if err != nil {
		return err
	}
	s := a.NewSession()
	s.Account = &neoxbridge.Account{Address: demoWallet}
	return playScript(ctx, cmd.OutOrStdout(), a.Handle, s, demoScript)
}
