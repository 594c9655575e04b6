package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/export"
	"github.com/leadflowhq/leadflow/internal/notify"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export leads as JSONL",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		bucket, _ := cmd.Flags().GetString("s3-bucket")
		key, _ := cmd.Flags().GetString("s3-key")
		region, _ := cmd.Flags().GetString("s3-region")
		endpoint, _ := cmd.Flags().GetString("s3-endpoint")
		search, _ := cmd.Flags().GetString("search")

		filters, err := filtersFromFlags(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()

		if bucket != "" {
			if key == "" {
				return fmt.Errorf("--s3-key is required with --s3-bucket")
			}
			var buf bytes.Buffer
			if err := export.JSONL(ctx, apiClient, search, filters, &buf); err != nil {
				notify.APIError(notifier, err)
				os.Exit(1)
			}
			dest, err := export.NewS3Destination(ctx, bucket, key, region, endpoint)
			if err != nil {
				return err
			}
			if err := dest.Write(ctx, buf.Bytes()); err != nil {
				return err
			}
			notifier.Successf("Exported to s3://%s/%s", bucket, key)
			return nil
		}

		w := os.Stdout
		if out != "" && out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		if err := export.JSONL(ctx, apiClient, search, filters, w); err != nil {
			notify.APIError(notifier, err)
			os.Exit(1)
		}
		if out != "" && out != "-" {
			notifier.Successf("Exported to %s", out)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	exportCmd.Flags().String("s3-bucket", "", "upload to this S3 bucket instead of a file")
	exportCmd.Flags().String("s3-key", "", "S3 object key")
	exportCmd.Flags().String("s3-region", "us-east-1", "S3 region")
	exportCmd.Flags().String("s3-endpoint", "", "custom S3 endpoint (MinIO and similar)")
	exportCmd.Flags().StringP("search", "s", "", "free-text search")
	exportCmd.Flags().String("status", "", "filter by status")
	exportCmd.Flags().String("source", "", "filter by source")
	exportCmd.Flags().Bool("qualified", false, "filter by qualification")
}
