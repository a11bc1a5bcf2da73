// Package s3types provides shared type definitions for the s3client module.
package s3types

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

// StorageClass represents the S3 storage class for objects.
type StorageClass string

// Predefined S3 storage classes
const (
	// StorageClassStandard is the default S3 storage class
	StorageClassStandard StorageClass = "STANDARD"

	// StorageClassReducedRedundancy provides reduced redundancy storage
	StorageClassReducedRedundancy StorageClass = "REDUCED_REDUNDANCY"

	// StorageClassStandardIA provides infrequent access storage
	StorageClassStandardIA StorageClass = "STANDARD_IA"

	// StorageClassOneZoneIA provides one zone infrequent access storage
	StorageClassOneZoneIA StorageClass = "ONEZONE_IA"

	// StorageClassIntelligentTiering provides intelligent tiering storage
	StorageClassIntelligentTiering StorageClass = "INTELLIGENT_TIERING"

	// StorageClassGlacier provides Glacier archival storage
	StorageClassGlacier StorageClass = "GLACIER"

	// StorageClassDeepArchive provides Deep Archive storage
	StorageClassDeepArchive StorageClass = "DEEP_ARCHIVE"

	// StorageClassGlacierIR provides Glacier Instant Retrieval storage
	StorageClassGlacierIR StorageClass = "GLACIER_IR"
)

// ChecksumPolicy selects when the SDK computes request checksums and
// validates response checksums.
type ChecksumPolicy string

// Supported checksum policies. The zero value leaves the SDK defaults alone.
const (
	// ChecksumWhenSupported computes/validates checksums whenever the
	// operation supports them.
	ChecksumWhenSupported ChecksumPolicy = "when_supported"

	// ChecksumWhenRequired computes/validates checksums only when the
	// operation requires them.
	ChecksumWhenRequired ChecksumPolicy = "when_required"
)

// Object represents an S3 object with its basic metadata.
// Version fields are populated only by version listings.
type Object struct {
	// Key is the S3 object key (path)
	Key string

	// Size is the object size in bytes
	Size int64

	// LastModified is when the object was last modified
	LastModified time.Time

	// ETag is the S3 entity tag for the object
	ETag string

	// StorageClass is the S3 storage class
	StorageClass string

	// VersionID is the object version (version listings only)
	VersionID string

	// IsLatest reports whether this version is the current one
	IsLatest bool

	// IsDeleteMarker reports whether this entry is a delete marker
	IsDeleteMarker bool
}

// ObjectMetadata contains detailed metadata about an S3 object.
type ObjectMetadata struct {
	// ContentType is the MIME type of the object
	ContentType string

	// ContentLength is the size of the object in bytes
	ContentLength int64

	// LastModified is when the object was last modified
	LastModified time.Time

	// ETag is the S3 entity tag for the object
	ETag string

	// VersionID is the object version if versioning is enabled
	VersionID string

	// StorageClass is the S3 storage class
	StorageClass string

	// Metadata contains user-defined metadata
	Metadata map[string]string
}

// BucketInfo describes a bucket returned by a bucket listing.
type BucketInfo struct {
	// Name is the bucket name
	Name string

	// CreationDate is when the bucket was created
	CreationDate time.Time
}

// BucketACL holds the owner and grants of a bucket's access control list.
type BucketACL struct {
	// Owner is the display name or ID of the bucket owner
	Owner string

	// Grants are the individual access grants
	Grants []ACLGrant
}

// ACLGrant is a single access control grant on a bucket.
type ACLGrant struct {
	// Grantee identifies who the grant applies to (ID, URI, or email)
	Grantee string

	// GranteeType is the kind of grantee (CanonicalUser, Group, ...)
	GranteeType string

	// Permission is the granted permission (READ, WRITE, FULL_CONTROL, ...)
	Permission string
}

// ProgressTracker defines the interface for tracking transfer progress.
// Implementations can provide real-time progress updates during uploads and downloads.
type ProgressTracker interface {
	// Update is called periodically with transfer progress
	Update(bytesTransferred, totalBytes int64)

	// Complete is called when the transfer completes successfully
	Complete()

	// Error is called when the transfer fails
	Error(err error)
}

// TransferResult contains the result of an upload or download operation.
type TransferResult struct {
	// Key is the S3 object key that was transferred
	Key string

	// Size is the size of the transferred object in bytes
	Size int64

	// ETag is the S3 entity tag for the object
	ETag string

	// VersionID is the version ID if versioning is enabled
	VersionID string

	// Duration is how long the transfer took
	Duration time.Duration
}

// DeleteResult contains the result of a batch delete operation.
type DeleteResult struct {
	// Deleted contains successfully deleted objects
	Deleted []Object

	// Errors contains any errors that occurred during deletion
	Errors []DeleteError

	// Duration is how long the operation took
	Duration time.Duration
}

// DeleteError represents an error that occurred during a delete operation.
type DeleteError struct {
	// Key is the S3 object key that failed to delete
	Key string

	// Version is the version ID if specified
	Version string

	// Code is the error code
	Code string

	// Message is the error message
	Message string
}

// DeleteObjectResult reports the outcome of a single-object delete.
type DeleteObjectResult struct {
	// DeleteMarker reports whether the delete created a delete marker
	DeleteMarker bool

	// VersionID is the version removed, or the delete marker's version
	VersionID string
}

// Configuration types for functional options

// ClientConfig holds configuration for the S3 client.
type ClientConfig struct {
	Region           string
	Endpoint         string
	Profile          string
	AccessKey        string
	SecretKey        string
	SessionToken     string
	MaxRetries       int
	ReadTimeout      time.Duration
	Concurrency      int
	PartSize         int64
	ForcePathStyle   bool
	ChecksumPolicy   ChecksumPolicy
	DebugLogging     bool
	CustomAWSConfig  *aws.Config
	CustomHTTPClient *http.Client
	Filesystem       fs.Filesystem // Filesystem abstraction for file operations
}

// UploadOptionConfig holds configuration for upload operations via functional options.
type UploadOptionConfig struct {
	ContentType     string
	Metadata        map[string]string
	StorageClass    StorageClass
	ProgressTracker ProgressTracker
	PartSize        int64
	Concurrency     int
}

// DownloadOptionConfig holds configuration for download operations via functional options.
type DownloadOptionConfig struct {
	ProgressTracker ProgressTracker
	VersionID       string
}

// ListOptionConfig holds configuration for list operations via functional options.
type ListOptionConfig struct {
	Prefix string
	Limit  int
}

// DeleteOptionConfig holds configuration for single-object delete operations.
type DeleteOptionConfig struct {
	VersionID string
}

// MetadataOptionConfig holds configuration for metadata queries.
type MetadataOptionConfig struct {
	VersionID string
}

// BucketOptionConfig holds configuration for bucket operations via functional options.
type BucketOptionConfig struct {
	Region    string
	Versioned bool
}

// Option is a functional option for configuring the S3 client.
type (
	Option func(*ClientConfig)
	// UploadOption is a functional option for configuring S3 upload operations.
	UploadOption func(*UploadOptionConfig)
	// DownloadOption is a functional option for configuring S3 download operations.
	DownloadOption func(*DownloadOptionConfig)
	// ListOption is a functional option for configuring S3 list operations.
	ListOption func(*ListOptionConfig)
	// DeleteOption is a functional option for configuring S3 delete operations.
	DeleteOption func(*DeleteOptionConfig)
	// MetadataOption is a functional option for configuring metadata queries.
	MetadataOption func(*MetadataOptionConfig)
	// BucketOption is a functional option for configuring S3 bucket operations.
	BucketOption func(*BucketOptionConfig)
)
