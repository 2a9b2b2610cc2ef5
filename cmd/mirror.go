package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unicodetools/ucdsync/internal/mirror"
	"github.com/unicodetools/ucdsync/internal/output"
	"github.com/unicodetools/ucdsync/internal/utils"
)

func newMirrorCmd() *cobra.Command {
	var bucket string
	var prefix string
	var profile string

	cmd := &cobra.Command{
		Use:   "mirror [directory] --bucket BUCKET",
		Short: "Upload previously synced UCD files to an S3 bucket",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			utils.InitLogger(debug)
			if bucket == "" {
				output.PrintError("No bucket provided")
				os.Exit(1)
			}
			ctx := context.Background()
			client, err := mirror.NewClient(ctx, profile)
			if err != nil {
				output.PrintError(fmt.Sprintf("Mirror failed: %v", err))
				os.Exit(1)
			}
			output.PrintInfo(fmt.Sprintf("Mirroring %s to s3://%s/%s", args[0], bucket, prefix))
			if err := client.MirrorDirectory(ctx, args[0], bucket, prefix); err != nil {
				output.PrintError(fmt.Sprintf("Mirror failed: %v", err))
				os.Exit(1)
			}
			output.PrintSuccess("Mirror complete")
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket name")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix for uploaded objects (eg. ucd/latest/)")
	cmd.Flags().StringVar(&profile, "profile", "", "AWS shared config profile")
	return cmd
}
