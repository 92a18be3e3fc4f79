// Package main provides the CLI entrypoint for decaesar.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/decaesar/internal/analysis"
	"github.com/verte-zerg/decaesar/internal/caesar"
	"github.com/verte-zerg/decaesar/internal/config"
	"github.com/verte-zerg/decaesar/internal/freq"
	"github.com/verte-zerg/decaesar/internal/input"
	"github.com/verte-zerg/decaesar/internal/model"
	"github.com/verte-zerg/decaesar/internal/report"
	"github.com/verte-zerg/decaesar/internal/tui"
)

const defaultChartHeight = 10

var (
	crackTop   int
	crackTable string
	crackFile  string

	bruteFile string

	shiftBy   int
	shiftFile string

	freqFile  string
	freqTable string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "decaesar [ciphertext]",
		Short:         "Caesar cipher cracker",
		Long:          "Recovers Caesar-enciphered text without the key, using chi-squared\nscoring against English letter frequencies and letter-mapping heuristics.\nCiphertext is taken from arguments, --file, or stdin.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.ArbitraryArgs,
		RunE:          runCrackCmd,
	}

	rootCmd.Flags().IntVar(&crackTop, "top", analysis.DefaultTopN, "number of chi-squared candidates to report")
	rootCmd.Flags().StringVar(&crackTable, "table", "", "frequency table (TOML file path or name under the tables dir)")
	rootCmd.Flags().StringVar(&crackFile, "file", "", "read ciphertext from file")

	rootCmd.AddCommand(newBruteForceCmd())
	rootCmd.AddCommand(newShiftCmd())
	rootCmd.AddCommand(newFreqCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runCrackCmd(cmd *cobra.Command, args []string) error {
	cfg, err := mergedCrackConfig(cmd)
	if err != nil {
		return err
	}
	table, err := resolveTable(cfg.TablePath)
	if err != nil {
		return err
	}
	ciphertext, err := input.From(args, crackFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if freq.Count(ciphertext).Total == 0 {
		logErrf("no alphabetic characters in input; chi-squared scores are undefined\n")
	}
	ranking := analysis.Rank(ciphertext, table, cfg.TopN)
	return report.RenderRanking(cmd.OutOrStdout(), ranking)
}

func newBruteForceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bruteforce [ciphertext]",
		Short: "Print all 26 shifted candidates",
		Args:  cobra.ArbitraryArgs,
		RunE:  runBruteForceCmd,
	}
	cmd.Flags().StringVar(&bruteFile, "file", "", "read ciphertext from file")
	return cmd
}

func runBruteForceCmd(cmd *cobra.Command, args []string) error {
	ciphertext, err := input.From(args, bruteFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	return report.RenderBruteForce(cmd.OutOrStdout(), ciphertext)
}

func newShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift [text]",
		Short: "Apply a Caesar shift with a known key",
		Args:  cobra.ArbitraryArgs,
		RunE:  runShiftCmd,
	}
	cmd.Flags().IntVar(&shiftBy, "by", 0, "shift amount (any integer, negatives decrypt)")
	cmd.Flags().StringVar(&shiftFile, "file", "", "read text from file")
	return cmd
}

func runShiftCmd(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("by") {
		return fmt.Errorf("--by is required")
	}
	text, err := input.From(args, shiftFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), caesar.Shift(text, shiftBy))
	return err
}

func newFreqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq [text]",
		Short: "Show letter frequencies vs the reference table",
		Args:  cobra.ArbitraryArgs,
		RunE:  runFreqCmd,
	}
	cmd.Flags().StringVar(&freqFile, "file", "", "read text from file")
	cmd.Flags().StringVar(&freqTable, "table", "", "frequency table (TOML file path or name under the tables dir)")
	return cmd
}

func runFreqCmd(cmd *cobra.Command, args []string) error {
	table, err := resolveTable(freqTable)
	if err != nil {
		return err
	}
	text, err := input.From(args, freqFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	return report.RenderFrequencies(cmd.OutOrStdout(), freq.Count(text), table, defaultChartHeight, false)
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive cracker",
		Args:  cobra.NoArgs,
		RunE:  runTUICmd,
	}
	cmd.Flags().IntVar(&crackTop, "top", analysis.DefaultTopN, "number of chi-squared candidates to report")
	cmd.Flags().StringVar(&crackTable, "table", "", "frequency table (TOML file path or name under the tables dir)")
	return cmd
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedCrackConfig(cmd)
	if err != nil {
		return err
	}
	table, err := resolveTable(cfg.TablePath)
	if err != nil {
		return err
	}
	model := tui.NewModel(cfg, table)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func mergedCrackConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "top", &crackTop, fileCfg.Crack.Top)
	applyStringConfig(cmd, "table", &crackTable, fileCfg.Crack.Table)

	if crackTop <= 0 {
		return model.Config{}, fmt.Errorf("--top must be > 0")
	}
	return model.Config{TopN: crackTop, TablePath: crackTable}, nil
}

func resolveTable(ref string) (freq.Table, error) {
	if ref == "" {
		return freq.English, nil
	}
	table, err := freq.LoadTable(config.ResolveTablePath(ref))
	if err != nil {
		return freq.Table{}, fmt.Errorf("failed to load frequency table: %w", err)
	}
	return table, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# decaesar configuration
# Uncomment a value to enable it. CLI flags override config values.

[crack]
# top = %d       # Chi-squared candidates to report
# table = ""    # Frequency table: TOML file path or a name under %s
`,
		analysis.DefaultTopN,
		config.DefaultTableDir(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
