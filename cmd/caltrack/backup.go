package caltrack

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot and restore your document",
}

var (
	backupOut    string
	backupDir    string
	restoreFile  string
	restoreForce bool
)

func defaultBackupDir() (string, error) {
	if backupDir != "" {
		return backupDir, nil
	}
	cfg, err := resolveConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(cfg.DBPath), "backups"), nil
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a checksummed JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			out := backupOut
			if out == "" {
				dir, err := defaultBackupDir()
				if err != nil {
					return err
				}
				out = filepath.Join(dir, service.SnapshotName(s.UserID(), time.Now()))
			}
			info, err := s.CreateBackup(out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created backup: %s\n", info.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := defaultBackupDir()
		if err != nil {
			return err
		}
		items, err := service.ListBackups(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "FILE\tSIZE\tCREATED\tCHECKSUM")
		for _, it := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", it.Path, it.SizeBytes, it.CreatedAt.Format(time.RFC3339), it.Checksum)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace your document with a snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			if len(s.Profiles()) > 0 && !restoreForce {
				return fmt.Errorf("document already has profiles; use --force to overwrite")
			}
			report, err := s.RestoreBackup(ctx, restoreFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d records from %s\n", report.Inserted, restoreFile)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Snapshot output file path")
	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Snapshot directory (used when --out is empty)")
	backupListCmd.Flags().StringVar(&backupDir, "dir", "", "Snapshot directory (default: alongside DB under backups/)")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Snapshot .json file path")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite a document that already has profiles")
}
