package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/pkg/logger"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export every collection as one JSON document",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBackup(); err != nil {
			fmt.Fprintf(os.Stderr, "Backup failed: %v\n", err)
			os.Exit(1)
		}
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace store contents from a backup document",
	Long:  `Reads a backup JSON document and writes its collections back into the store. The document is validated in full before anything is applied.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRestore(); err != nil {
			fmt.Fprintf(os.Stderr, "Restore failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func runBackup() error {
	st, err := openStore()
	if err != nil {
		return err
	}

	data, err := st.Backup()
	if err != nil {
		return err
	}

	if backupOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(backupOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	logger.L().Info("backup written", "path", backupOut, "bytes", len(data))
	return nil
}

func runRestore() error {
	st, err := openStore()
	if err != nil {
		return err
	}

	var data []byte
	if restoreIn == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(restoreIn)
	}
	if err != nil {
		return fmt.Errorf("failed to read backup document: %w", err)
	}

	if err := st.Restore(data); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			return fmt.Errorf("%s", appErr.Message)
		}
		return err
	}
	logger.L().Info("store restored", "bytes", len(data))
	return nil
}
