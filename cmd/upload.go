package cmd

import (
	"github.com/spf13/cobra"

	"github.com/beemon/beemon/core"
	"github.com/beemon/beemon/internal/contract"
)

// uploadCmd pushes rendered charts to Google Drive.
var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload rendered charts to Google Drive.",
	Long: `Upload chart PNGs into a named Google Drive folder, creating the folder
when it does not exist yet. Without arguments every PNG in the output
directory is uploaded; with arguments only the listed files are.

Credentials are service-account JSON, read from the ` + contract.CredentialsEnvVar + `
environment variable or from the file passed via --credentials.

Examples:
  # Upload everything under ./output
  beemon upload

  # Upload selected files into a custom folder
  beemon upload output/inout_01-10.png --remote-folder hive-42`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteUpload(rootCtx, cfg, args); err != nil {
			contract.LogFatal("Cannot upload charts", err)
		}
	},
}
