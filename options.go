// Package s3client provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package s3client

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/thobiast/s3-client/s3types"
)

// WithRegion sets the AWS region for S3 operations.
// If not specified, uses the default AWS region from the credential chain.
func WithRegion(region string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Region = region
	}
}

// WithEndpoint sets a custom S3 endpoint URL.
// This is useful for S3-compatible services or local testing with LocalStack.
func WithEndpoint(endpoint string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithProfile selects a named profile from the shared AWS config files.
func WithProfile(profile string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Profile = profile
	}
}

// WithStaticCredentials sets fixed credentials instead of the default
// credential chain. The session token may be empty.
func WithStaticCredentials(accessKey, secretKey, sessionToken string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.AccessKey = accessKey
		c.SecretKey = secretKey
		c.SessionToken = sessionToken
	}
}

// WithMaxRetries sets the maximum number of retry attempts for failed operations.
// Default is 3 retries. Set to 0 to disable retries.
func WithMaxRetries(maxRetries int) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.MaxRetries = maxRetries
	}
}

// WithReadTimeout bounds how long the client waits for response headers
// on each request. It does not limit how long a transfer body may take,
// so large uploads and downloads are unaffected. Default is no timeout.
func WithReadTimeout(timeout time.Duration) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.ReadTimeout = timeout
	}
}

// WithConcurrency sets the maximum number of concurrent operations.
// This affects multipart uploads and batch operations.
// Default is 5 concurrent operations.
func WithConcurrency(concurrency int) s3types.Option {
	return func(c *s3types.ClientConfig) {
		if concurrency > 0 {
			c.Concurrency = concurrency
		}
	}
}

// WithPartSize sets the part size for multipart transfers.
// Default is 8MB. Must be at least 5MB for S3 multipart uploads.
func WithPartSize(partSize int64) s3types.Option {
	return func(c *s3types.ClientConfig) {
		if partSize > 0 {
			c.PartSize = partSize
		}
	}
}

// WithForcePathStyle forces the use of path-style URLs instead of virtual-hosted style.
// This is required for S3-compatible services that don't support virtual hosting.
// Default is false (uses virtual-hosted style).
func WithForcePathStyle(forcePathStyle bool) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.ForcePathStyle = forcePathStyle
	}
}

// WithChecksumPolicy controls when the SDK computes request checksums
// and validates response checksums. Some S3-compatible services reject
// the checksum headers sent under the default policy.
func WithChecksumPolicy(policy s3types.ChecksumPolicy) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.ChecksumPolicy = policy
	}
}

// WithDebugLogging enables AWS SDK request and response logging.
func WithDebugLogging(enabled bool) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.DebugLogging = enabled
	}
}

// WithAWSConfig allows providing a custom AWS configuration.
// This overrides the default configuration loading behavior.
// Use this when you need fine-grained control over AWS SDK configuration.
func WithAWSConfig(config *aws.Config) s3types.Option {
	return func(c *s3types.ClientConfig) {
		// Store the custom config for later use
		c.CustomAWSConfig = config
	}
}

// WithCustomHTTPClient allows providing a custom HTTP client.
// This gives full control over HTTP behavior including timeouts, proxies, etc.
func WithCustomHTTPClient(client *http.Client) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.CustomHTTPClient = client
	}
}

// WithFilesystem sets a custom filesystem implementation for file operations.
// This allows using in-memory filesystems for testing or virtual filesystems.
// If not specified, defaults to the OS filesystem.
func WithFilesystem(filesystem fs.Filesystem) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithContentType sets the content type for upload operations.
func WithContentType(contentType string) s3types.UploadOption {
	return func(c *s3types.UploadOptionConfig) {
		c.ContentType = contentType
	}
}

// WithMetadata sets metadata for upload operations.
func WithMetadata(metadata map[string]string) s3types.UploadOption {
	return func(c *s3types.UploadOptionConfig) {
		if c.Metadata == nil {
			c.Metadata = make(map[string]string)
		}
		for k, v := range metadata {
			c.Metadata[k] = v
		}
	}
}

// WithStorageClass sets the storage class for upload operations.
func WithStorageClass(storageClass s3types.StorageClass) s3types.UploadOption {
	return func(c *s3types.UploadOptionConfig) {
		c.StorageClass = storageClass
	}
}

// WithProgress sets a progress tracker for upload operations.
func WithProgress(tracker s3types.ProgressTracker) s3types.UploadOption {
	return func(c *s3types.UploadOptionConfig) {
		c.ProgressTracker = tracker
	}
}

// WithUploadPartSize sets the part size for multipart uploads in upload operations.
// This overrides the client-level default for this specific upload.
func WithUploadPartSize(partSize int64) s3types.UploadOption {
	return func(c *s3types.UploadOptionConfig) {
		if partSize > 0 {
			c.PartSize = partSize
		}
	}
}

// WithUploadConcurrency sets the concurrency level for multipart uploads in upload operations.
// This overrides the client-level default for this specific upload.
func WithUploadConcurrency(concurrency int) s3types.UploadOption {
	return func(c *s3types.UploadOptionConfig) {
		if concurrency > 0 {
			c.Concurrency = concurrency
		}
	}
}

// WithDownloadProgress sets a progress tracker for download operations.
func WithDownloadProgress(tracker s3types.ProgressTracker) s3types.DownloadOption {
	return func(c *s3types.DownloadOptionConfig) {
		c.ProgressTracker = tracker
	}
}

// WithDownloadVersion downloads a specific object version instead of
// the latest one.
func WithDownloadVersion(versionID string) s3types.DownloadOption {
	return func(c *s3types.DownloadOptionConfig) {
		c.VersionID = versionID
	}
}

// WithPrefix restricts list operations to keys starting with prefix.
func WithPrefix(prefix string) s3types.ListOption {
	return func(c *s3types.ListOptionConfig) {
		c.Prefix = prefix
	}
}

// WithLimit caps the number of entries a list operation returns.
// Zero or negative means no limit.
func WithLimit(limit int) s3types.ListOption {
	return func(c *s3types.ListOptionConfig) {
		c.Limit = limit
	}
}

// WithDeleteVersion deletes a specific object version instead of
// creating a delete marker.
func WithDeleteVersion(versionID string) s3types.DeleteOption {
	return func(c *s3types.DeleteOptionConfig) {
		c.VersionID = versionID
	}
}

// WithMetadataVersion queries metadata of a specific object version.
func WithMetadataVersion(versionID string) s3types.MetadataOption {
	return func(c *s3types.MetadataOptionConfig) {
		c.VersionID = versionID
	}
}

// WithBucketRegion sets the region a bucket is created in.
// Defaults to the client region.
func WithBucketRegion(region string) s3types.BucketOption {
	return func(c *s3types.BucketOptionConfig) {
		c.Region = region
	}
}

// WithVersioning enables object versioning on a newly created bucket.
func WithVersioning(enabled bool) s3types.BucketOption {
	return func(c *s3types.BucketOptionConfig) {
		c.Versioned = enabled
	}
}
