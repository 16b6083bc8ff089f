package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/devtracer/matrixcalc/internal/config"
	"github.com/devtracer/matrixcalc/internal/logging"
	"github.com/devtracer/matrixcalc/internal/matrix"
	"github.com/devtracer/matrixcalc/internal/service"
	"github.com/devtracer/matrixcalc/internal/tui"
)

// app carries what PersistentPreRunE builds for every subcommand.
type app struct {
	configPath string
	debug      bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "matrixcalc",
		Short:         "Matrices Cross Product Calculator",
		Long:          "Interactive terminal calculator for the product of two integer matrices.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			logger, err := logging.New(cfg.Log, a.debug)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runTUI,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/matrixcalc/config.toml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log at debug level")

	root.AddCommand(a.newMultiplyCmd())
	return root
}

func (a *app) calculator() *service.Calculator {
	return service.NewCalculator(a.logger, a.cfg.Matrix.DefaultDimension, a.cfg.Matrix.MaxDimension)
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	keys := tui.NewKeyRegistry()
	kb, err := tui.LoadKeybindings(a.cfg.UI.KeybindingsPath)
	if err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}
	if err := keys.ApplyActionKeys(kb.Bindings); err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}

	a.logger.Info("starting tui", zap.Int("default_dimension", a.cfg.Matrix.DefaultDimension))
	m := tui.New(cmd.Context(), a.cfg, a.calculator(), keys, a.logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (a *app) newMultiplyCmd() *cobra.Command {
	var lhs, rhs string
	cmd := &cobra.Command{
		Use:     "multiply",
		Short:   "Multiply two matrix literals and print the product",
		Example: `  matrixcalc multiply --a "1,2;3,4" --b "5,6;7,8"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ma, err := matrix.ParseLiteral(lhs)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			mb, err := matrix.ParseLiteral(rhs)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}
			res, err := a.calculator().CalculateMatrices(cmd.Context(), ma, mb)
			if err != nil {
				return err
			}
			return writeMatrix(cmd.OutOrStdout(), res.Product)
		},
	}
	cmd.Flags().StringVar(&lhs, "a", "", "left operand, rows separated by ';' and cells by ','")
	cmd.Flags().StringVar(&rhs, "b", "", "right operand, same format as --a")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

// writeMatrix prints one row per line with cells separated by single spaces.
func writeMatrix(w io.Writer, m matrix.Matrix) error {
	for _, row := range m {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}
