// Command ops is the operator tool for save slots: list, inspect, export,
// import, delete, and migrate between the file and sqlite backends.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tfs2006/affiliate-simulator/internal/ops"
	"github.com/tfs2006/affiliate-simulator/internal/save"
	"github.com/tfs2006/affiliate-simulator/internal/sim"
)

var (
	dataDir string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "ops",
	Short: "Operate on simulator save slots",
	Long:  `Inspect and move save slots between the JSON file backend and the sqlite backend.`,
}

func openStore() (save.Store, func(), error) {
	if dbPath != "" {
		st, err := save.OpenSQLiteStore(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil
	}
	st, err := save.NewFileStore(dataDir)
	if err != nil {
		return nil, nil, err
	}
	return st, func() {}, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List save slots",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		infos, err := store.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("no save slots")
			return nil
		}
		for _, info := range infos {
			fmt.Printf("%-20s day %-4d $%-8d saved %s\n",
				info.Slot, info.Day, info.Cash, info.SavedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <slot>",
	Short: "Print a slot's full state as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		snap, err := store.Load(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <slot> <file>",
	Short: "Export a slot's state to a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		snap, err := store.Load(args[0])
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(snap.State, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], data, 0644)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <slot> <file>",
	Short: "Import a JSON state file into a slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		var state sim.GameState
		if err := json.Unmarshal(data, &state); err != nil {
			return fmt.Errorf("parse state: %w", err)
		}
		snap, err := store.Save(args[0], state)
		if err != nil {
			return err
		}
		fmt.Printf("imported %q (day %d)\n", snap.Slot, snap.State.Day)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		return store.Delete(args[0])
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate <db-file>",
	Short: "Copy every file-backend slot into a sqlite database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := save.NewFileStore(dataDir)
		if err != nil {
			return err
		}
		dst, err := save.OpenSQLiteStore(args[0])
		if err != nil {
			return err
		}
		defer dst.Close()

		infos, err := src.List()
		if err != nil {
			return err
		}
		for _, info := range infos {
			snap, err := src.Load(info.Slot)
			if err != nil {
				return err
			}
			if _, err := dst.Save(info.Slot, snap.State); err != nil {
				return err
			}
			fmt.Printf("migrated %q\n", info.Slot)
		}
		fmt.Printf("%d slots migrated\n", len(infos))
		return nil
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup <archive.tar.gz>",
	Short: "Archive the save directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ops.BackupSaves(dataDir, args[0]); err != nil {
			return err
		}
		fmt.Printf("backed up %s to %s\n", dataDir, args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <archive.tar.gz>",
	Short: "Unpack a backup archive into the save directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ops.RestoreSaves(args[0], dataDir); err != nil {
			return err
		}
		fmt.Printf("restored %s into %s\n", args[0], dataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory for JSON save slots")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite save database (overrides --data-dir)")
	rootCmd.AddCommand(listCmd, showCmd, exportCmd, importCmd, deleteCmd, migrateCmd, backupCmd, restoreCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
