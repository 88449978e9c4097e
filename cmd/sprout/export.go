package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/sprout-ui/sprout/pkg/export"
)

func exportCmd() *cobra.Command {
	var (
		out    string
		bucket string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the demo application to static HTML",
		Long: `Render the demo application to inert HTML documents: markup only,
no client script, no live sessions.

Examples:
  sprout export --out=dist
  sprout export --bucket=my-bucket --prefix=site/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), out, bucket, prefix)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Publish to this S3 bucket instead of a directory")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix for S3 objects")

	return cmd
}

func runExport(ctx context.Context, out, bucket, prefix string) error {
	pages := map[string]export.Page{
		"index.html": {Title: "sprout demo", Root: demoRoot()},
	}

	if bucket != "" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("load aws config: %w", err)
		}
		pub := export.NewS3Publisher(s3.NewFromConfig(cfg), bucket, prefix)
		if err := pub.Publish(ctx, pages); err != nil {
			return err
		}
		fmt.Printf("published %d page(s) to s3://%s/%s\n", len(pages), bucket, prefix)
		return nil
	}

	if err := export.WriteFile(out, pages); err != nil {
		return err
	}
	fmt.Printf("wrote %d page(s) to %s\n", len(pages), out)
	return nil
}
