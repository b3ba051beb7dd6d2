package cmd

import (
	"fmt"
	"io"
	"strings"

	"bitkit/internal/config"
	"bitkit/internal/demo"
	"bitkit/internal/eval"
	"bitkit/internal/log"
	"bitkit/internal/tui"
	"bitkit/pkg/bitint"
	"bitkit/pkg/build"
	"bitkit/pkg/search"
	"bitkit/pkg/utils"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// rootOptions carries flag values and the loaded configuration for one
// invocation of the root command.
type rootOptions struct {
	configPath string
	width      int
	verbose    bool
	logLevel   string
	value      int64
	limit      int64
	summary    bool

	cfg *config.Config
}

// load reads the config file, then applies any flags the user set
// explicitly on top of it.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Display.Width = o.width
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if o.verbose {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	log.SetLevel(cfg.Level())
	log.Debugf("configuration:\n%s", cfg)
	o.cfg = cfg
	return nil
}

// startValue returns --value when given, else the configured demo value.
func (o *rootOptions) startValue(cmd *cobra.Command) int64 {
	if cmd.Flags().Changed("value") {
		return o.value
	}
	return o.cfg.Demo.Value
}

// NewRootCommand builds the bitkit command tree writing to the command's
// configured output.
func NewRootCommand() *cobra.Command {
	buildInfo := build.GetBuildFlags()
	options := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         buildInfo.Description,
		Version:       buildInfo.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return options.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Render(cmd.OutOrStdout(), options.cfg.Demo.Value, options.cfg.Display.Width, options.cfg.Display.Color)
		},
	}

	// Display help message
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Demo command
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through set, unset and toggle on a sample word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Render(cmd.OutOrStdout(), options.startValue(cmd), options.cfg.Display.Width, options.cfg.Display.Color)
		},
	}
	demoCmd.Flags().Int64Var(&options.value, "value", config.DefaultDemoValue, "Starting word")
	rootCmd.AddCommand(demoCmd)

	// Eval command
	evalCmd := &cobra.Command{
		Use:   "eval <operation> [args...]",
		Short: "Evaluate one bit operation",
		Long:  "Evaluate one bit operation on int64 words. Operations:\n\n" + eval.Help(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := eval.Evaluate(args[0], args[1:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Format(options.cfg.Display.Width))
			return err
		},
	}
	evalCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(evalCmd)

	// Powerset command
	powersetCmd := &cobra.Command{
		Use:   "powerset <elements...>",
		Short: "List every subset of the given elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPowerSet(cmd.OutOrStdout(), args, options.cfg.Limits.MaxPowerSetElements, options.summary)
		},
	}
	powersetCmd.Flags().BoolVar(&options.summary, "summary", false, "Print subset counts by size instead of the subsets")
	powersetCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(powersetCmd)

	// Search command
	searchCmd := &cobra.Command{
		Use:   "search linear|binary <target> <values...>",
		Short: "Find target in a list of integers",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.OutOrStdout(), args[0], args[1], args[2:])
		},
	}
	searchCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(searchCmd)

	// Verify command
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check closed forms against brute-force references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := options.cfg.Limits.VerifyLimit
			if cmd.Flags().Changed("limit") {
				limit = options.limit
			}
			return runVerify(cmd.OutOrStdout(), limit)
		},
	}
	verifyCmd.Flags().Int64Var(&options.limit, "limit", config.DefaultVerifyLimit, "Largest input to check")
	rootCmd.AddCommand(verifyCmd)

	// Explore command
	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "Edit a word bit by bit in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.StartExplorer(options.startValue(cmd), options.cfg.Display.Width, options.cfg.Display.Color)
		},
	}
	exploreCmd.Flags().Int64Var(&options.value, "value", config.DefaultDemoValue, "Starting word")
	rootCmd.AddCommand(exploreCmd)

	// Configuration
	rootCmd.PersistentFlags().StringVarP(&options.configPath, "config", "c", "",
		"Path to a YAML config file (default bitkit.yaml or config.yaml)")
	rootCmd.PersistentFlags().IntVarP(&options.width, "width", "w", config.DefaultDisplayWidth,
		"Bits shown per word: 8, 16, 32 or 64")

	// Debug Configuration
	rootCmd.PersistentFlags().BoolVarP(&options.verbose, "verbose", "v", config.DefaultDebug,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVar(&options.logLevel, "log-level", config.DefaultLogLevel,
		"Log level: debug, info, warn, error")

	return rootCmd
}

// Execute runs the command tree with the given arguments.
func Execute(args []string) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func runPowerSet(w io.Writer, elements []string, maxElements int, summary bool) error {
	if len(elements) > maxElements {
		return errors.Errorf("powerset: %d elements exceeds the limit of %d (%d subsets)",
			len(elements), maxElements, bitint.Power(2, int64(len(elements))))
	}
	log.Debugf("powerset: generating %d subsets", bitint.Power(2, int64(len(elements))))

	if summary {
		for k, count := range utils.SubsetSizeHistogram(len(elements)) {
			if _, err := fmt.Fprintf(w, "size %d: %d\n", k, count); err != nil {
				return err
			}
		}
		return nil
	}

	return bitint.EachSubset(elements, func(subset []string) error {
		_, err := fmt.Fprintf(w, "{%s}\n", strings.Join(subset, ", "))
		return err
	})
}

func runSearch(w io.Writer, method, target string, values []string) error {
	t, err := eval.ParseWord(target)
	if err != nil {
		return errors.Wrap(err, "search target")
	}
	words := make([]int64, len(values))
	for i, v := range values {
		if words[i], err = eval.ParseWord(v); err != nil {
			return errors.Wrapf(err, "search value %d", i)
		}
	}

	var index int
	switch method {
	case "linear":
		index = search.Linear(words, t)
	case "binary":
		if !search.IsSorted(words) {
			return errors.New("binary search requires values in ascending order")
		}
		index = search.Binary(words, t)
	default:
		return errors.Errorf("unknown search method %q, want linear or binary", method)
	}

	if index == -1 {
		_, err = fmt.Fprintf(w, "Element %d not found\n", t)
	} else {
		_, err = fmt.Fprintf(w, "Element %d found at index %d\n", t, index)
	}
	return err
}

func runVerify(w io.Writer, limit int64) error {
	if limit < 0 || limit > config.MaxVerifyLimit {
		return errors.Errorf("verify: limit %d must be in [0, %d]", limit, config.MaxVerifyLimit)
	}
	log.Infof("verify: checking inputs 0..%d", limit)

	mismatches := utils.CrossCheck(limit)
	for _, m := range mismatches {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	if len(mismatches) > 0 {
		return errors.Errorf("verify: %d mismatches", len(mismatches))
	}
	_, err := fmt.Fprintf(w, "verify: all closed forms agree for inputs 0..%d\n", limit)
	return err
}
