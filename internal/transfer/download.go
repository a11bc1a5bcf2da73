package transfer

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/thobiast/s3-client/internal/s3api"
	"github.com/thobiast/s3-client/s3types"
)

// Downloader performs managed downloads through the SDK transfer manager.
type Downloader struct {
	mgr *manager.Downloader
}

// NewDownloader creates a Downloader backed by the given API client.
// Concurrency is pinned to 1 so parts arrive in order for streaming
// writers.
func NewDownloader(client s3api.S3API, partSize int64) *Downloader {
	mgr := manager.NewDownloader(client, func(d *manager.Downloader) {
		if partSize > 0 {
			d.PartSize = partSize
		}
		d.Concurrency = 1
	})
	return &Downloader{mgr: mgr}
}

// DownloadInput describes a single object download.
type DownloadInput struct {
	Bucket    string
	Key       string
	VersionID string
	Size      int64
	Writer    io.Writer
	Tracker   s3types.ProgressTracker
}

// Download fetches one object from S3, writing it sequentially to
// in.Writer. Byte progress is reported through the tracker, and the
// tracker is completed or failed to match the outcome.
func (d *Downloader) Download(ctx context.Context, in DownloadInput) (*s3types.TransferResult, error) {
	start := time.Now()

	w := &sequentialWriterAt{
		writer:  in.Writer,
		tracker: in.Tracker,
		total:   in.Size,
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(in.Bucket),
		Key:    aws.String(in.Key),
	}
	if in.VersionID != "" {
		input.VersionId = aws.String(in.VersionID)
	}

	n, err := d.mgr.Download(ctx, w, input)
	if err != nil {
		if in.Tracker != nil {
			in.Tracker.Error(err)
		}
		return nil, err
	}

	if in.Tracker != nil {
		in.Tracker.Complete()
	}

	return &s3types.TransferResult{
		Key:      in.Key,
		Size:     n,
		Duration: time.Since(start),
	}, nil
}
