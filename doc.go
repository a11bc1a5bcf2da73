// Package s3client provides a high-level Go module for S3-compatible
// object storage. It wraps AWS SDK v2 to provide an intuitive interface
// for bucket management, object listing, and file transfers against AWS
// S3 and compatible services such as MinIO or Ceph RGW.
//
// The module emphasizes developer experience through simple APIs while
// maintaining performance through intelligent defaults for concurrency,
// buffering, and retries.
//
// Key features:
//   - Simple, zero-configuration usage with AWS credential chain
//   - Custom endpoints and path-style addressing for S3-compatible services
//   - Progressive enhancement through functional options
//   - Automatic multipart transfers for large files via the SDK manager
//   - Byte-level progress reporting through a pluggable tracker interface
//   - Comprehensive error handling with context
//
// Example usage:
//
//	client, err := s3client.New(
//	    s3client.WithEndpoint("https://storage.example.com"),
//	    s3client.WithForcePathStyle(true),
//	)
//	if err != nil {
//	    return err
//	}
//
//	// Upload a file
//	result, err := client.UploadFile(ctx, "my-bucket", "path/file.txt", "/local/file.txt")
//	if err != nil {
//	    return err
//	}
package s3client
