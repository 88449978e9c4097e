package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the slice of the S3 client the publisher needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher publishes exported pages to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	pub := export.NewS3Publisher(s3.NewFromConfig(cfg), "my-bucket", "site/")
//	err := pub.Publish(ctx, map[string]export.Page{"index.html": page})
type S3Publisher struct {
	client s3API
	bucket string
	prefix string
}

// NewS3Publisher creates a publisher writing under prefix in bucket.
func NewS3Publisher(client s3API, bucket, prefix string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket, prefix: prefix}
}

// Publish uploads pages keyed by relative output path.
func (p *S3Publisher) Publish(ctx context.Context, pages map[string]Page) error {
	for rel, page := range pages {
		clean, ok := sanitizeRel(rel)
		if !ok {
			return fmt.Errorf("export: bad output path %q", rel)
		}
		html, err := page.HTML()
		if err != nil {
			return err
		}
		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(p.prefix + clean),
			Body:        strings.NewReader(html),
			ContentType: aws.String("text/html; charset=utf-8"),
		})
		if err != nil {
			return fmt.Errorf("export: put %q: %w", clean, err)
		}
	}
	return nil
}
