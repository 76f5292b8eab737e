package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nixclean/internal/app"
	"nixclean/internal/clean"
	"nixclean/internal/config"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nixclean",
	Short: "Clean obsolete Nix profile generations and stale gcroots",
	Long: `nixclean plans and executes deletion of obsolete profile generations and
stale indirect gcroots under a retention policy, then runs the store
garbage collector.`,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Clean all profiles on the system (requires root)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd, clean.Mode{Kind: clean.ModeAll})
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Clean the current user's profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd, clean.Mode{Kind: clean.ModeUser})
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile PATH",
	Short: "Clean a single profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd, clean.Mode{Kind: clean.ModeProfile, ProfilePath: args[0]})
	},
}

// runClean wires the app and executes one cleanup in the given mode.
func runClean(cmd *cobra.Command, mode clean.Mode) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	a, err := app.New(verbose)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}
	defer a.Close()

	opts, err := optionsFrom(cmd, a.Config())
	if err != nil {
		return err
	}

	return a.Clean(mode, opts)
}

// optionsFrom builds the run options from the command-line flags, falling
// back to the config file for policy values the user did not pass.
func optionsFrom(cmd *cobra.Command, cfg *config.Config) (clean.Options, error) {
	flags := cmd.Flags()

	keep, _ := flags.GetUint("keep")
	if !flags.Changed("keep") {
		keep = cfg.Policy.Keep
	}

	keepSinceRaw, _ := flags.GetString("keep-since")
	if !flags.Changed("keep-since") {
		keepSinceRaw = cfg.Policy.KeepSince
	}
	keepSince, err := config.ParseKeepSince(keepSinceRaw)
	if err != nil {
		return clean.Options{}, fmt.Errorf("parsing --keep-since: %w", err)
	}

	dry, _ := flags.GetBool("dry")
	ask, _ := flags.GetBool("ask")
	noGC, _ := flags.GetBool("no-gc")
	noGcroots, _ := flags.GetBool("no-gcroots")
	optimise, _ := flags.GetBool("optimise")
	max, _ := flags.GetString("max")

	return clean.Options{
		Policy:    clean.RetentionPolicy{Keep: keep, KeepSince: keepSince},
		Dry:       dry,
		Ask:       ask,
		NoGC:      noGC,
		NoGcroots: noGcroots,
		Optimise:  optimise,
		Max:       max,
	}, nil
}

func addCleanFlags(cmd *cobra.Command) {
	cmd.Flags().UintP("keep", "k", 1, "At least keep this number of generations")
	cmd.Flags().StringP("keep-since", "K", "0s", "At least keep gcroots and generations newer than this (e.g. 12h, 30d, 1w)")
	cmd.Flags().BoolP("dry", "n", false, "Only print actions, without performing them")
	cmd.Flags().BoolP("ask", "a", false, "Ask for confirmation before deleting")
	cmd.Flags().Bool("no-gc", false, "Don't run the store garbage collector")
	cmd.Flags().Bool("no-gcroots", false, "Don't clean gcroots")
	cmd.Flags().Bool("optimise", false, "Run the store optimiser after garbage collection")
	cmd.Flags().String("max", "", "Bound on how much the collector may free, passed through to it")
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	addCleanFlags(allCmd)
	addCleanFlags(userCmd)
	addCleanFlags(profileCmd)

	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(profileCmd)
}
