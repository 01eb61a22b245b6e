package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mmrzaf/dataforge/internal/app"
	"github.com/mmrzaf/dataforge/internal/columns"
	"github.com/mmrzaf/dataforge/internal/config"
	"github.com/mmrzaf/dataforge/internal/domain"
	"github.com/mmrzaf/dataforge/internal/export"
	"github.com/mmrzaf/dataforge/internal/infra/repos/presets"
	"github.com/mmrzaf/dataforge/internal/infra/targets/postgres"
	"github.com/mmrzaf/dataforge/internal/infra/targets/sqlite"
	"github.com/mmrzaf/dataforge/internal/load"
	"github.com/mmrzaf/dataforge/internal/logging"
)

var (
	presetsDir string
	logLevel   string
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "dataforge",
		Short: "Synthetic tabular data generator",
	}

	rootCmd.PersistentFlags().StringVar(&presetsDir, "presets-dir", cfg.PresetsDir, "Presets directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(columnsCmd())
	rootCmd.AddCommand(generateCmd(cfg))
	rootCmd.AddCommand(loadCmd(cfg))
	rootCmd.AddCommand(presetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newService(cfg *config.Config) *app.GenerateService {
	logger := logging.NewLogger(logLevel).WithComponent("cli")
	registry := columns.DefaultRegistry()
	presetRepo := presets.NewFileRepository(presetsDir)
	return app.NewGenerateService(registry, presetRepo, logger, cfg.MaxRecords, cfg.DefaultRecords, cfg.Workers)
}

func columnsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List available columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := columns.DefaultRegistry().Infos()

			if format == "json" {
				data, _ := json.MarshalIndent(infos, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPREREQUISITES")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\n", info.Name, strings.Join(info.Prerequisites, ", "))
			}
			w.Flush()
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")
	return cmd
}

func generateCmd(cfg *config.Config) *cobra.Command {
	var (
		count    int
		cols     []string
		presetID string
		format   string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset and export it",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService(cfg)

			payload, err := service.Generate(&domain.GenerateRequest{
				RecordCount: count,
				Columns:     cols,
				Format:      domain.Format(format),
				PresetID:    presetID,
			})
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				_, err := os.Stdout.Write(payload.Data)
				return err
			}
			if err := os.WriteFile(outPath, payload.Data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %d bytes to %s\n", len(payload.Data), outPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Record count (out of range falls back to the default)")
	cmd.Flags().StringSliceVar(&cols, "columns", nil, "Columns to generate, in output order")
	cmd.Flags().StringVar(&presetID, "preset", "", "Preset ID supplying count/columns/format")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format (csv|json|xml|sql)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func loadCmd(cfg *config.Config) *cobra.Command {
	var (
		count     int
		cols      []string
		presetID  string
		kind      string
		dsn       string
		schema    string
		table     string
		truncate  bool
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Generate a dataset and load it into a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				return fmt.Errorf("--dsn is required")
			}

			var target load.Target
			switch kind {
			case "sqlite":
				target = sqlite.NewSQLiteTarget(dsn)
			case "postgres":
				target = postgres.NewPostgresTarget(dsn, schema)
			default:
				return fmt.Errorf("unsupported target kind: %s", kind)
			}

			service := newService(cfg)
			ds, err := service.GenerateDataset(&domain.GenerateRequest{
				RecordCount: count,
				Columns:     cols,
				PresetID:    presetID,
			})
			if err != nil {
				return err
			}

			inserted, err := load.Load(target, table, ds, batchSize, truncate)
			if err != nil {
				return err
			}
			fmt.Printf("Loaded %d rows into %s\n", inserted, table)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Record count (out of range falls back to the default)")
	cmd.Flags().StringSliceVar(&cols, "columns", nil, "Columns to generate, in output order")
	cmd.Flags().StringVar(&presetID, "preset", "", "Preset ID supplying count/columns")
	cmd.Flags().StringVar(&kind, "kind", "sqlite", "Target kind (sqlite|postgres)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Target DSN or file path")
	cmd.Flags().StringVar(&schema, "schema", "", "Target schema (postgres only)")
	cmd.Flags().StringVar(&table, "table", export.TableName, "Target table name")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Truncate the table before loading")
	cmd.Flags().IntVar(&batchSize, "batch-size", 1000, "Insert batch size")
	return cmd
}

func presetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage presets",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := presets.NewFileRepository(presetsDir)
			list, err := repo.List()
			if err != nil {
				return err
			}

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tRECORDS\tFORMAT\tCOLUMNS")
			for _, p := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\n", p.ID, p.Name, p.RecordCount, p.Format, len(p.Columns))
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show preset details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := presets.NewFileRepository(presetsDir)
			preset, err := repo.Get(args[0])
			if err != nil {
				return err
			}

			data, _ := yaml.Marshal(preset)
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}
