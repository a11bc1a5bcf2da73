// Package internal contains private implementation details for the S3 client.
// These packages are not intended for external use and may change without notice.
//
// The internal packages are organized as follows:
//   - config: Settings loading from files and environment
//   - format: Human-readable byte and duration formatting
//   - s3api: Interface over the AWS SDK S3 client
//   - transfer: Managed transfers and local directory scanning
//   - validation: Input validation logic
//   - testutil: Shared test doubles and helpers
package internal
