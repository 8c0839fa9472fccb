package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/factory-atlas/pkg/runtime/backend"
	"github.com/de-tools/factory-atlas/pkg/services/config"
	"github.com/de-tools/factory-atlas/pkg/store/duckdb"
	storesql "github.com/de-tools/factory-atlas/pkg/store/sql"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ImportCmd struct {
	env *Env
	dir string
}

func NewImportCmd(env *Env) *cobra.Command {
	ic := &ImportCmd{env: env}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load CSV exports into the local DuckDB warehouse",
		Long: "Replaces the contents of every table that has a matching <table>.csv in --dir. " +
			"Tables without a file are left untouched.",
		Args: cobra.NoArgs,
		RunE: ic.run,
	}

	cmd.Flags().StringVar(&ic.dir, "dir", "", "Directory containing the CSV files")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	return ic.env.session(cmd, func(ctx context.Context, _ *config.Config, b *backend.Backend) error {
		if b.Dialect != storesql.DuckDB {
			return fmt.Errorf("import is only supported for the duckdb driver, got %s", b.Dialect)
		}

		n, err := duckdb.ImportCSV(ctx, b.DB, ic.dir)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", ic.dir, err)
		}

		zerolog.Ctx(ctx).Info().Str("dir", ic.dir).Int("tables", n).Msg("import finished")
		_, err = fmt.Fprintf(ic.env.output(), "Imported %d tables from %s\n", n, ic.dir)
		return err
	})
}

type ProfilesCmd struct {
	env  *Env
	path string
}

func NewProfilesCmd(env *Env) *cobra.Command {
	pc := &ProfilesCmd{env: env}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the warehouse profiles found in the profiles file",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.path, "path", "", "Profiles file (default: store.profiles_path)")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	path := pc.path
	if path == "" {
		cfg, err := config.Load(pc.env.ConfigPath)
		if err != nil {
			return err
		}
		path = cfg.Store.ProfilesPath
	}
	if path == "" {
		return fmt.Errorf("no profiles file: set --path or store.profiles_path")
	}

	registry, err := config.NewRegistry(path)
	if err != nil {
		return err
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	out := pc.env.output()
	for _, p := range profiles {
		if _, err := fmt.Fprintf(out, "%-24s %s\n", p.Name, p.Type); err != nil {
			return err
		}
	}
	return nil
}
