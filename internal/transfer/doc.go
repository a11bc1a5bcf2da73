// Package transfer moves files between the local filesystem and S3.
// It maps local paths to object keys and back, walks upload roots, and
// wraps the AWS SDK transfer managers with byte-level progress
// reporting.
//
// Multipart splitting, retries, and concurrency stay inside the SDK
// managers; this package only configures them.
package transfer
