package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/erazemk/custodian/internal/config"
	"github.com/erazemk/custodian/internal/docstore"
	"github.com/erazemk/custodian/internal/logging"
	"github.com/erazemk/custodian/internal/store"
)

// NewInspectCmd creates the inspect subcommand.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print owners, items and item histories",
		Long: `Load the store from the configured backend and print every owner with
the items it holds, followed by every item and its history.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// Keep stdout for the report.
			logger, _, err := logging.New(logging.Options{
				Format: cfg.LogFormat,
				Level:  slog.LevelWarn,
				Stdout: cmd.ErrOrStderr(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			backend, err := docstore.Open(cmd.Context(), cfg.Docstore())
			if err != nil {
				return fmt.Errorf("opening document backend: %w", err)
			}
			defer backend.Close()

			s := store.New(store.WithBackend(backend), store.WithLogger(logger))
			if err := s.Load(cmd.Context()); err != nil {
				return err
			}
			return printStore(cmd.OutOrStdout(), s, loc)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func printStore(w io.Writer, s *store.Store, loc *time.Location) error {
	st := s.Stats()
	if _, err := fmt.Fprintf(w, "%d owners, %d items (%d assigned, %d worn)\n", st.Owners, st.Items, st.Assigned, st.Worn); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nOwners:")
	for _, o := range s.FindAllOwners() {
		fmt.Fprintf(w, "  [%d] %s\n", o.ID, o.Name)
		items, err := s.OwnerItems(o.ID)
		if err != nil {
			return err
		}
		for _, it := range items {
			fmt.Fprintf(w, "      - [%d] %s (condition %d)\n", it.ID, it.Name, it.Condition)
		}
	}

	fmt.Fprintln(w, "\nItems:")
	for _, it := range s.FindAllItems() {
		holder := "unassigned"
		if o, ok := s.FindOwnerByID(it.OwnerID); ok {
			holder = "held by " + o.Name
		}
		fmt.Fprintf(w, "  [%d] %s: %s (condition %d, %s)\n", it.ID, it.Name, it.Description, it.Condition, holder)
		for _, tx := range it.History {
			fmt.Fprintf(w, "      %s  %s\n", tx.DisplayTime(loc), tx.Label())
		}
	}
	return nil
}
