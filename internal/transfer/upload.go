package transfer

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/thobiast/s3-client/internal/s3api"
	"github.com/thobiast/s3-client/s3types"
)

// Uploader performs managed uploads through the SDK transfer manager.
type Uploader struct {
	mgr *manager.Uploader
}

// NewUploader creates an Uploader backed by the given API client.
// Positive partSize and concurrency values override the manager
// defaults.
func NewUploader(client s3api.S3API, partSize int64, concurrency int) *Uploader {
	mgr := manager.NewUploader(client, func(u *manager.Uploader) {
		if partSize > 0 {
			u.PartSize = partSize
		}
		if concurrency > 0 {
			u.Concurrency = concurrency
		}
	})
	return &Uploader{mgr: mgr}
}

// UploadInput describes a single object upload.
type UploadInput struct {
	Bucket       string
	Key          string
	Body         io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
	StorageClass s3types.StorageClass
	Tracker      s3types.ProgressTracker
}

// Upload sends one object to S3. Byte progress is reported through the
// tracker as the body is consumed, and the tracker is completed or
// failed to match the outcome.
func (u *Uploader) Upload(ctx context.Context, in UploadInput) (*s3types.TransferResult, error) {
	start := time.Now()

	body := in.Body
	if in.Tracker != nil {
		body = newProgressReader(in.Body, in.Tracker, in.Size)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(in.Bucket),
		Key:    aws.String(in.Key),
		Body:   body,
	}
	if in.ContentType != "" {
		input.ContentType = aws.String(in.ContentType)
	}
	if in.StorageClass != "" {
		input.StorageClass = awstypes.StorageClass(in.StorageClass)
	}
	if len(in.Metadata) > 0 {
		input.Metadata = in.Metadata
	}

	output, err := u.mgr.Upload(ctx, input)
	if err != nil {
		if in.Tracker != nil {
			in.Tracker.Error(err)
		}
		return nil, err
	}

	if in.Tracker != nil {
		in.Tracker.Update(in.Size, in.Size)
		in.Tracker.Complete()
	}

	return &s3types.TransferResult{
		Key:       in.Key,
		Size:      in.Size,
		ETag:      aws.ToString(output.ETag),
		VersionID: aws.ToString(output.VersionID),
		Duration:  time.Since(start),
	}, nil
}
