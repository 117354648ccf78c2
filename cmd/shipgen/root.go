package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shipment-generator/internal/catalog"
	"shipment-generator/internal/config"
	"shipment-generator/internal/gen"
	"shipment-generator/internal/logging"
	"shipment-generator/internal/output"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shipgen",
		Short:         "Generate synthetic truck-shipment fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newCatalogCmd(), newInspectCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "generate [regional|fleet]...",
		Short:     "Generate fixture files (all profiles when none given)",
		ValidArgs: gen.Profiles,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetUint64("seed")
				cfg.SeedSet = true
			}
			if cmd.Flags().Changed("count") {
				cfg.Count, _ = cmd.Flags().GetInt("count")
				if cfg.Count <= 0 {
					return fmt.Errorf("invalid --count: %d", cfg.Count)
				}
			}
			if cmd.Flags().Changed("out-dir") {
				cfg.OutputDir, _ = cmd.Flags().GetString("out-dir")
			}

			log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			profiles := args
			if len(profiles) == 0 {
				profiles = gen.Profiles
			}
			_, err = run(cmd.Context(), cfg, log, profiles)
			if err != nil {
				log.Error("generate failed", zap.Error(err))
			}
			return err
		},
	}
	cmd.Flags().Uint64("seed", 0, "random seed (overrides SEED)")
	cmd.Flags().Int("count", 0, "records per profile (overrides SHIPMENT_COUNT)")
	cmd.Flags().String("out-dir", "", "output directory (overrides OUTPUT_DIR)")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "catalog [regional|fleet]",
		Short:     "Print a built-in reference catalog as TOML",
		ValidArgs: gen.Profiles,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := gen.Regional
			if len(args) == 1 {
				name = args[0]
			}
			p, _ := gen.Lookup(name)
			return p.Catalog.Encode(cmd.OutOrStdout())
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a fixture file by company and status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := output.ReadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shipments: %d\n", len(c.Shipments))
			for _, line := range summarize(c.Shipments) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

// loadCatalog returns the override catalog, or nil to keep each profile's own.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return nil, nil
	}
	return catalog.Load(path)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
