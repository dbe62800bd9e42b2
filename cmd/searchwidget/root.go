package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"searchwidget/internal/config"
	"searchwidget/internal/eventbus"
	"searchwidget/internal/ui"
)

// readyEnv makes the program announce itself on stderr once it is running
const readyEnv = "SEARCHWIDGET_E2E_TEST"

type rootOptions struct {
	configPath string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "searchwidget",
		Short: "Searchable dropdown picker for the terminal",
		Long: `searchwidget shows a text input that filters a list of options as you type.
Matching ignores case and accents. Pick a result with the arrow keys and Enter
or with the mouse; the chosen value is printed to stdout on exit.

Options are read from a TOML config file (see "searchwidget init").`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), v, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default is "+config.DefaultPath()+")")
	flags.StringVar(&opts.logFile, "log-file", "searchwidget.log", "log file")
	flags.StringP("placeholder", "p", "", "placeholder shown in the empty input")
	flags.Bool("exit-on-select", false, "exit as soon as an option is selected")
	flags.Int("width", 0, "widget width in cells")

	// flag > env > file > default
	_ = v.BindPFlag("placeholder", flags.Lookup("placeholder"))
	_ = v.BindPFlag("ui.exit_on_select", flags.Lookup("exit-on-select"))
	_ = v.BindPFlag("ui.width", flags.Lookup("width"))

	cmd.AddCommand(newInitCmd())
	return cmd
}

func run(out io.Writer, v *viper.Viper, opts *rootOptions) error {
	logger := setupLogging(opts.logFile)
	defer logger.Close()

	cfg, err := loadConfig(v, opts.configPath)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return err
	}
	log.Printf("Loaded %d options", len(cfg.Options))

	bus := eventbus.New()
	model := ui.NewModel(bus, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(p)

	if os.Getenv(readyEnv) != "" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	if value := model.Selected(); value != "" {
		fmt.Fprintln(out, value)
	}
	return nil
}

func loadConfig(v *viper.Viper, path string) (*config.Config, error) {
	svc := config.NewConfigServiceWithViper(v, path)
	if path != "" {
		return svc.LoadFromPath(path)
	}
	return svc.Load()
}

// setupLogging sends the standard logger to a rotating file
func setupLogging(path string) *lumberjack.Logger {
	logger := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(logger)
	return logger
}
