package s3client

import (
	"context"
	"errors"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"

	s3errors "github.com/thobiast/s3-client/errors"
	"github.com/thobiast/s3-client/internal/transfer"
	"github.com/thobiast/s3-client/internal/validation"
	"github.com/thobiast/s3-client/s3types"
)

// UploadFile uploads a file from the filesystem to S3.
// The SDK transfer manager splits large files into parts and uploads
// them concurrently; part size and concurrency come from the client
// configuration unless overridden per call.
//
// The content type is automatically detected from the file content,
// and falls back to the file extension. Use WithContentType to set
// it explicitly.
//
// Errors:
//   - ErrInvalidInput: If bucket is empty, key is invalid, or path is a directory
//   - ErrBucketNotFound: If the specified bucket doesn't exist
//   - ErrAccessDenied: If the credentials lack permission to upload
//   - File system errors (file not found, permission denied)
//   - Network errors or AWS SDK errors wrapped in Error type
//
// Example:
//
//	result, err := client.UploadFile(ctx, "my-bucket", "backup/data.tar.gz", "/tmp/data.tar.gz",
//	    s3client.WithStorageClass(s3types.StorageClassStandardIA),
//	    s3client.WithProgress(tracker),
//	)
func (c *Client) UploadFile(ctx context.Context, bucket, key, filePath string, opts ...s3types.UploadOption) (*s3types.TransferResult, error) {
	if bucket == "" {
		return nil, s3errors.NewError("uploadFile", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("bucket name cannot be empty")
	}
	if err := validation.ValidateObjectKey(key); err != nil {
		return nil, s3errors.NewError("uploadFile", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage(err.Error())
	}
	if filePath == "" {
		return nil, s3errors.NewError("uploadFile", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("file path cannot be empty")
	}

	filesystem := c.filesystem()

	info, err := filesystem.Stat(filePath)
	if err != nil {
		return nil, s3errors.NewError("uploadFile", err).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("failed to stat file")
	}
	if info.IsDir() {
		return nil, s3errors.NewError("uploadFile", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("path is a directory, not a file")
	}

	// Apply upload options
	config := &s3types.UploadOptionConfig{
		PartSize:    c.partSize,
		Concurrency: c.concurrency,
	}
	for _, opt := range opts {
		opt(config)
	}

	if config.ContentType == "" {
		config.ContentType = c.detectContentType(filePath)
	} else if err := validation.ValidateContentType(config.ContentType); err != nil {
		return nil, s3errors.NewError("uploadFile", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage(err.Error())
	}

	if config.Metadata != nil {
		if err := validation.ValidateMetadata(config.Metadata); err != nil {
			return nil, s3errors.NewError("uploadFile", s3errors.ErrInvalidInput).
				WithBucket(bucket).
				WithKey(key).
				WithMessage(err.Error())
		}
		config.Metadata = validation.SanitizeMetadata(config.Metadata)
	}

	file, err := filesystem.Open(filePath)
	if err != nil {
		return nil, s3errors.NewError("uploadFile", err).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("failed to open file")
	}
	defer func() { _ = file.Close() }()

	uploader := transfer.NewUploader(c.s3Client, config.PartSize, config.Concurrency)
	result, err := uploader.Upload(ctx, transfer.UploadInput{
		Bucket:       bucket,
		Key:          key,
		Body:         file,
		Size:         info.Size(),
		ContentType:  config.ContentType,
		Metadata:     config.Metadata,
		StorageClass: config.StorageClass,
		Tracker:      config.ProgressTracker,
	})
	if err != nil {
		return nil, s3errors.NewError("uploadFile", c.convertAWSError(err)).WithBucket(bucket).WithKey(key)
	}

	return result, nil
}

// DownloadFile downloads an object from S3 to the filesystem.
// Missing parent directories of destPath are created. Use opts to
// download a specific object version or attach a progress tracker.
//
// The object size is resolved with a HEAD request before the download
// starts, so a missing object fails before any local file is created.
//
// Errors:
//   - ErrInvalidInput: If bucket is empty, key is invalid, or destPath is empty
//   - ErrObjectNotFound: If the specified object doesn't exist
//   - ErrAccessDenied: If the credentials lack permission to download
//   - File system errors (permission denied, disk full)
//   - Network errors or AWS SDK errors wrapped in Error type
//
// Example:
//
//	result, err := client.DownloadFile(ctx, "my-bucket", "backup/data.tar.gz", "/tmp/data.tar.gz")
//	if err != nil {
//	    return fmt.Errorf("download failed: %w", err)
//	}
func (c *Client) DownloadFile(ctx context.Context, bucket, key, destPath string, opts ...s3types.DownloadOption) (*s3types.TransferResult, error) {
	if bucket == "" {
		return nil, s3errors.NewError("downloadFile", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("bucket name cannot be empty")
	}
	if err := validation.ValidateObjectKey(key); err != nil {
		return nil, s3errors.NewError("downloadFile", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage(err.Error())
	}
	if destPath == "" {
		return nil, s3errors.NewError("downloadFile", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("destination path cannot be empty")
	}

	// Apply download options
	config := &s3types.DownloadOptionConfig{}
	for _, opt := range opts {
		opt(config)
	}

	headInput := &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if config.VersionID != "" {
		headInput.VersionId = aws.String(config.VersionID)
	}

	head, err := c.s3Client.HeadObject(ctx, headInput)
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, s3errors.NewObjectError("downloadFile", bucket, key, s3errors.ErrObjectNotFound)
		}
		return nil, s3errors.NewError("downloadFile", c.convertAWSError(err)).WithBucket(bucket).WithKey(key)
	}

	filesystem := c.filesystem()

	if dir := filepath.Dir(destPath); dir != "" && dir != "." {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			return nil, s3errors.NewError("downloadFile", err).
				WithBucket(bucket).
				WithKey(key).
				WithMessage("failed to create destination directory")
		}
	}

	file, err := filesystem.Create(destPath)
	if err != nil {
		return nil, s3errors.NewError("downloadFile", err).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("failed to create destination file")
	}
	defer func() { _ = file.Close() }()

	downloader := transfer.NewDownloader(c.s3Client, c.partSize)
	result, err := downloader.Download(ctx, transfer.DownloadInput{
		Bucket:    bucket,
		Key:       key,
		VersionID: config.VersionID,
		Size:      aws.ToInt64(head.ContentLength),
		Writer:    file,
		Tracker:   config.ProgressTracker,
	})
	if err != nil {
		return nil, s3errors.NewError("downloadFile", c.convertAWSError(err)).WithBucket(bucket).WithKey(key)
	}

	result.ETag = aws.ToString(head.ETag)
	result.VersionID = aws.ToString(head.VersionId)

	return result, nil
}

// detectContentType detects the content type of a file by reading its header.
// Falls back to extension-based detection, then to the default content type.
func (c *Client) detectContentType(filePath string) string {
	filesystem := c.filesystem()

	info, err := filesystem.Stat(filePath)
	if err != nil || info.IsDir() {
		return detectContentTypeFromExtension(filePath)
	}

	file, err := filesystem.Open(filePath)
	if err != nil {
		return detectContentTypeFromExtension(filePath)
	}
	defer func() { _ = file.Close() }()

	// mimetype needs at most 512 bytes for detection
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && n == 0 {
		return detectContentTypeFromExtension(filePath)
	}

	mtype := mimetype.Detect(buffer[:n])
	if mtype != nil {
		return mtype.String()
	}

	return detectContentTypeFromExtension(filePath)
}

// detectContentTypeFromExtension detects content type from the file extension
func detectContentTypeFromExtension(filePath string) string {
	ext := filepath.Ext(filePath)
	if ext != "" {
		if contentType := mime.TypeByExtension(ext); contentType != "" {
			return contentType
		}
	}
	return DefaultContentType
}
