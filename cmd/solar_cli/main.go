package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"solar_cli/pkg/ai"
	_ "solar_cli/pkg/ai/providers"
	"solar_cli/pkg/assistant"
	"solar_cli/pkg/config"
	"solar_cli/pkg/logging"
	"solar_cli/pkg/roi"
	"solar_cli/pkg/ui"
	"solar_cli/pkg/ui/markdown"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("solar_cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print version information and exit")
	configPath := fs.String("config", "", "config file path (default ~/.solar_cli/config.json)")
	question := fs.String("ask", "", "ask one question, print the reply and exit")
	roiArgs := fs.String("roi", "", "print the payback period for cost,savings[,incentives] and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		printVersion(stdout)
		return 0
	}

	// The calculator is local and needs no credentials.
	if *roiArgs != "" {
		return runROI(*roiArgs, stdout, stderr)
	}

	path := *configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		fmt.Fprintf(stderr, "Config file: %s\n", path)
		printProviders(stderr)
		return 1
	}

	if _, err := logging.Init(cfg); err != nil {
		fmt.Fprintf(stderr, "Warning: file logging disabled: %v\n", err)
	}
	slog.Info("startup",
		"provider", cfg.LLMProvider,
		"model", cfg.ActiveModel(),
		"config_path", path,
	)

	provider, err := ai.GetProviderFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating provider: %v\n", err)
		return 1
	}
	generator := assistant.NewGenerator(provider, assistant.OptionsFromConfig(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *question != "" {
		return runAsk(ctx, generator, *question, stdout, stderr)
	}

	model := ui.NewModel(ctx, generator, ui.Options{
		Provider: cfg.LLMProvider,
		Model:    cfg.ActiveModel(),
		ROIDefaults: roi.Inputs{
			SystemCost:    cfg.ROI.SystemCost,
			AnnualSavings: cfg.ROI.AnnualSavings,
			Incentives:    cfg.ROI.Incentives,
		},
	})
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		slog.Error("ui_exit", "error", err)
		fmt.Fprintf(stderr, "Error running UI: %v\n", err)
		return 1
	}
	return 0
}

func printProviders(w io.Writer) {
	fmt.Fprintln(w, "Available providers (llm_provider):")
	for _, info := range ai.DefaultRegistry.ListProviders() {
		fmt.Fprintf(w, "  %-11s %s: %s (key from %s)\n", info.Type, info.Name, info.Description, info.KeyEnv)
	}
}

// runAsk answers one question. The reply is rendered when stdout is a
// terminal and printed raw otherwise.
func runAsk(ctx context.Context, generator *assistant.Generator, question string, stdout, stderr io.Writer) int {
	res := generator.Generate(ctx, question, nil)
	if !res.OK() {
		fmt.Fprintln(stderr, res.Display())
		return 1
	}

	if width, ok := terminalWidth(stdout); ok {
		fmt.Fprintln(stdout, markdown.Render(res.Text(), width))
		return 0
	}
	fmt.Fprintln(stdout, res.Text())
	return 0
}

func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}

func runROI(raw string, stdout, stderr io.Writer) int {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 || len(parts) > 3 {
		fmt.Fprintln(stderr, "Usage: --roi <system cost>,<annual savings>[,<incentives>]")
		return 2
	}
	for len(parts) < 3 {
		parts = append(parts, "")
	}

	in, err := roi.ParseInputs(parts[0], parts[1], parts[2])
	if err == nil {
		err = in.Validate()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	b := roi.Calculate(in)
	fmt.Fprintln(stdout, b.Summary())
	for _, row := range b.Rows() {
		fmt.Fprintf(stdout, "  %-16s %s\n", row[0]+":", row[1])
	}
	return 0
}
