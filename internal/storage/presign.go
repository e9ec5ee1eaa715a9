// Package storage issues time-limited presigned URLs for the download
// objects kept in S3.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignTTL = 15 * time.Minute

type Presigner struct {
	bucket string

	// AWS config is loaded on first use and cached for the process
	// lifetime.
	once    sync.Once
	presign *s3.PresignClient
	initErr error
}

// NewPresigner reads DOWNLOADS_BUCKET; AWS credentials come from the
// default chain.
func NewPresigner() *Presigner {
	return &Presigner{bucket: os.Getenv("DOWNLOADS_BUCKET")}
}

func (p *Presigner) Configured() bool { return p.bucket != "" }

func (p *Presigner) init(ctx context.Context) error {
	p.once.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			p.initErr = fmt.Errorf("load aws config: %w", err)
			return
		}
		p.presign = s3.NewPresignClient(s3.NewFromConfig(cfg))
	})
	return p.initErr
}

// PresignGet returns a URL for the object that expires after 15 minutes.
func (p *Presigner) PresignGet(ctx context.Context, objectKey string) (string, error) {
	if p.bucket == "" {
		return "", fmt.Errorf("downloads bucket is not configured")
	}
	if err := p.init(ctx); err != nil {
		return "", err
	}

	req, err := p.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &p.bucket,
		Key:    &objectKey,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("presign object %s: %w", objectKey, err)
	}
	return req.URL, nil
}
