// Package s3client provides the main client and core operations.
package s3client

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	s3errors "github.com/thobiast/s3-client/errors"
	"github.com/thobiast/s3-client/internal/validation"
	"github.com/thobiast/s3-client/s3types"
)

const (
	// DefaultContentType is the default content type used when content type detection fails
	DefaultContentType = "application/octet-stream"

	// maxKeysPerPage is the S3 page size limit for list and batch delete requests
	maxKeysPerPage = 1000

	// bucketWaitTimeout bounds how long bucket create/delete waiters poll
	bucketWaitTimeout = 2 * time.Minute
)

// BucketExists checks whether a bucket exists using a HEAD request.
// Returns true if the bucket exists, false if it doesn't.
// Returns an error for other failures such as network issues or missing permissions.
//
// Example:
//
//	exists, err := client.BucketExists(ctx, "my-bucket")
//	if err != nil {
//	    return fmt.Errorf("failed to check bucket: %w", err)
//	}
func (c *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	if bucket == "" {
		return false, s3errors.NewError("bucketExists", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name cannot be empty")
	}

	input := &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	}

	_, err := c.s3Client.HeadBucket(ctx, input)
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		// Some S3-compatible services return the condition as a bare status code
		errMsg := err.Error()
		if strings.Contains(errMsg, "NotFound") || strings.Contains(errMsg, "NoSuchBucket") {
			return false, nil
		}
		return false, s3errors.NewError("bucketExists", c.convertAWSError(err)).WithBucket(bucket)
	}

	return true, nil
}

// CreateBucket creates a new S3 bucket and waits until it is reachable.
// The bucket name must be DNS-compliant and unique across all existing bucket names.
// Use opts to pick the bucket region or enable object versioning.
//
// Bucket naming rules:
//   - Must be 3-63 characters long
//   - Can only contain lowercase letters, numbers, dots (.), and hyphens (-)
//   - Must begin and end with a letter or number
//   - Must not be formatted as an IP address
//
// Errors:
//   - ErrInvalidBucketName: If the bucket name doesn't comply with naming rules
//   - ErrBucketAlreadyExists: If a bucket with this name already exists
//   - ErrAccessDenied: If the credentials lack permission to create buckets
//   - Network errors or AWS SDK errors wrapped in Error type
//
// Example:
//
//	err := client.CreateBucket(ctx, "my-new-bucket",
//	    s3client.WithBucketRegion("us-west-2"),
//	    s3client.WithVersioning(true),
//	)
func (c *Client) CreateBucket(ctx context.Context, bucket string, opts ...s3types.BucketOption) error {
	// Validate bucket name
	if err := validation.ValidateBucketName(bucket); err != nil {
		return s3errors.NewError("createBucket", s3errors.ErrInvalidBucketName).
			WithBucket(bucket).
			WithMessage(err.Error())
	}

	// Apply bucket options
	config := &s3types.BucketOptionConfig{}
	for _, opt := range opts {
		opt(config)
	}

	// Build the create bucket request
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}

	// us-east-1 is the API default and must not be sent as a location
	// constraint
	region := config.Region
	if region == "" {
		region = c.config.Region
	}
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	_, err := c.s3Client.CreateBucket(ctx, input)
	if err != nil {
		return s3errors.NewError("createBucket", c.convertAWSError(err)).WithBucket(bucket)
	}

	// Wait until the bucket is visible before reporting success
	waiter := s3.NewBucketExistsWaiter(c.s3Client)
	if err := waiter.Wait(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}, bucketWaitTimeout); err != nil {
		return s3errors.NewError("createBucket", err).WithBucket(bucket)
	}

	if config.Versioned {
		_, err := c.s3Client.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
			Bucket: aws.String(bucket),
			VersioningConfiguration: &types.VersioningConfiguration{
				Status: types.BucketVersioningStatusEnabled,
			},
		})
		if err != nil {
			return s3errors.NewError("createBucket", c.convertAWSError(err)).
				WithBucket(bucket).
				WithMessage("bucket created but enabling versioning failed")
		}
	}

	return nil
}

// DeleteBucket deletes an S3 bucket and waits until it is gone.
// The bucket must be empty before it can be deleted. Use EmptyBucket
// to remove remaining objects first.
//
// Errors:
//   - ErrInvalidBucketName: If the bucket name doesn't comply with naming rules
//   - ErrBucketNotFound: If the bucket doesn't exist
//   - ErrBucketNotEmpty: If the bucket contains objects or versions
//   - ErrAccessDenied: If the credentials lack permission to delete the bucket
//   - Network errors or AWS SDK errors wrapped in Error type
func (c *Client) DeleteBucket(ctx context.Context, bucket string) error {
	// Validate bucket name
	if err := validation.ValidateBucketName(bucket); err != nil {
		return s3errors.NewError("deleteBucket", s3errors.ErrInvalidBucketName).
			WithBucket(bucket).
			WithMessage(err.Error())
	}

	input := &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	}

	_, err := c.s3Client.DeleteBucket(ctx, input)
	if err != nil {
		return s3errors.NewError("deleteBucket", c.convertAWSError(err)).WithBucket(bucket)
	}

	// Wait until the deletion has propagated
	waiter := s3.NewBucketNotExistsWaiter(c.s3Client)
	if err := waiter.Wait(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}, bucketWaitTimeout); err != nil {
		return s3errors.NewError("deleteBucket", err).WithBucket(bucket)
	}

	return nil
}

// ListBuckets returns all buckets owned by the authenticated account.
func (c *Client) ListBuckets(ctx context.Context) ([]s3types.BucketInfo, error) {
	result, err := c.s3Client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, s3errors.NewError("listBuckets", c.convertAWSError(err))
	}

	buckets := make([]s3types.BucketInfo, 0, len(result.Buckets))
	for _, b := range result.Buckets {
		buckets = append(buckets, s3types.BucketInfo{
			Name:         aws.ToString(b.Name),
			CreationDate: aws.ToTime(b.CreationDate),
		})
	}

	return buckets, nil
}

// BucketVersioning returns the versioning status of a bucket.
// The status is "Enabled", "Suspended", or empty when versioning was
// never configured.
func (c *Client) BucketVersioning(ctx context.Context, bucket string) (string, error) {
	if bucket == "" {
		return "", s3errors.NewError("bucketVersioning", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name cannot be empty")
	}

	result, err := c.s3Client.GetBucketVersioning(ctx, &s3.GetBucketVersioningInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return "", s3errors.NewError("bucketVersioning", c.convertAWSError(err)).WithBucket(bucket)
	}

	return string(result.Status), nil
}

// BucketACL returns the owner and access control grants of a bucket.
func (c *Client) BucketACL(ctx context.Context, bucket string) (*s3types.BucketACL, error) {
	if bucket == "" {
		return nil, s3errors.NewError("bucketACL", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name cannot be empty")
	}

	result, err := c.s3Client.GetBucketAcl(ctx, &s3.GetBucketAclInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return nil, s3errors.NewError("bucketACL", c.convertAWSError(err)).WithBucket(bucket)
	}

	acl := &s3types.BucketACL{}
	if result.Owner != nil {
		acl.Owner = aws.ToString(result.Owner.DisplayName)
		if acl.Owner == "" {
			acl.Owner = aws.ToString(result.Owner.ID)
		}
	}

	acl.Grants = make([]s3types.ACLGrant, 0, len(result.Grants))
	for _, g := range result.Grants {
		grant := s3types.ACLGrant{
			Permission: string(g.Permission),
		}
		if g.Grantee != nil {
			grant.GranteeType = string(g.Grantee.Type)
			// Groups are identified by URI, users by display name or ID
			switch {
			case aws.ToString(g.Grantee.DisplayName) != "":
				grant.Grantee = aws.ToString(g.Grantee.DisplayName)
			case aws.ToString(g.Grantee.URI) != "":
				grant.Grantee = aws.ToString(g.Grantee.URI)
			default:
				grant.Grantee = aws.ToString(g.Grantee.ID)
			}
		}
		acl.Grants = append(acl.Grants, grant)
	}

	return acl, nil
}

// ListObjects lists current objects in a bucket in the order the
// service returns them. Use opts to restrict the listing to a key
// prefix or cap the number of entries.
//
// Pagination is handled internally. With a limit set, the last page
// request is sized to the remaining entries so no excess keys are
// fetched.
//
// Errors:
//   - ErrInvalidInput: If bucket is empty
//   - ErrBucketNotFound: If the specified bucket doesn't exist
//   - ErrAccessDenied: If the credentials lack permission to list
//   - Network errors or AWS SDK errors wrapped in Error type
//
// Example:
//
//	objects, err := client.ListObjects(ctx, "my-bucket",
//	    s3client.WithPrefix("photos/"),
//	    s3client.WithLimit(100),
//	)
func (c *Client) ListObjects(ctx context.Context, bucket string, opts ...s3types.ListOption) ([]s3types.Object, error) {
	if bucket == "" {
		return nil, s3errors.NewError("listObjects", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name cannot be empty")
	}

	// Apply list options
	config := &s3types.ListOptionConfig{}
	for _, opt := range opts {
		opt(config)
	}

	var objects []s3types.Object
	var continuationToken *string

	for {
		pageSize := int32(maxKeysPerPage)
		if config.Limit > 0 {
			remaining := config.Limit - len(objects)
			if remaining <= 0 {
				return objects, nil
			}
			if remaining < maxKeysPerPage {
				pageSize = int32(remaining)
			}
		}

		input := &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			MaxKeys:           aws.Int32(pageSize),
			ContinuationToken: continuationToken,
		}
		if config.Prefix != "" {
			input.Prefix = aws.String(config.Prefix)
		}

		result, err := c.s3Client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, s3errors.NewError("listObjects", c.convertAWSError(err)).WithBucket(bucket)
		}

		for _, obj := range result.Contents {
			objects = append(objects, s3types.Object{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
				ETag:         aws.ToString(obj.ETag),
				StorageClass: string(obj.StorageClass),
			})
			if config.Limit > 0 && len(objects) >= config.Limit {
				return objects, nil
			}
		}

		if !aws.ToBool(result.IsTruncated) {
			break
		}
		continuationToken = result.NextContinuationToken
	}

	return objects, nil
}

// ListObjectVersions lists object versions and delete markers in a
// bucket, preserving the service ordering within each page. Delete
// markers carry IsDeleteMarker and a zero size.
//
// Errors:
//   - ErrInvalidInput: If bucket is empty
//   - ErrBucketNotFound: If the specified bucket doesn't exist
//   - ErrAccessDenied: If the credentials lack permission to list
//   - Network errors or AWS SDK errors wrapped in Error type
func (c *Client) ListObjectVersions(ctx context.Context, bucket string, opts ...s3types.ListOption) ([]s3types.Object, error) {
	if bucket == "" {
		return nil, s3errors.NewError("listObjectVersions", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name cannot be empty")
	}

	// Apply list options
	config := &s3types.ListOptionConfig{}
	for _, opt := range opts {
		opt(config)
	}

	var objects []s3types.Object
	var keyMarker, versionIDMarker *string

	for {
		pageSize := int32(maxKeysPerPage)
		if config.Limit > 0 {
			remaining := config.Limit - len(objects)
			if remaining <= 0 {
				return objects, nil
			}
			if remaining < maxKeysPerPage {
				pageSize = int32(remaining)
			}
		}

		input := &s3.ListObjectVersionsInput{
			Bucket:          aws.String(bucket),
			MaxKeys:         aws.Int32(pageSize),
			KeyMarker:       keyMarker,
			VersionIdMarker: versionIDMarker,
		}
		if config.Prefix != "" {
			input.Prefix = aws.String(config.Prefix)
		}

		result, err := c.s3Client.ListObjectVersions(ctx, input)
		if err != nil {
			return nil, s3errors.NewError("listObjectVersions", c.convertAWSError(err)).WithBucket(bucket)
		}

		for _, v := range result.Versions {
			objects = append(objects, s3types.Object{
				Key:          aws.ToString(v.Key),
				Size:         aws.ToInt64(v.Size),
				LastModified: aws.ToTime(v.LastModified),
				ETag:         aws.ToString(v.ETag),
				StorageClass: string(v.StorageClass),
				VersionID:    aws.ToString(v.VersionId),
				IsLatest:     aws.ToBool(v.IsLatest),
			})
			if config.Limit > 0 && len(objects) >= config.Limit {
				return objects, nil
			}
		}

		for _, m := range result.DeleteMarkers {
			objects = append(objects, s3types.Object{
				Key:            aws.ToString(m.Key),
				LastModified:   aws.ToTime(m.LastModified),
				VersionID:      aws.ToString(m.VersionId),
				IsLatest:       aws.ToBool(m.IsLatest),
				IsDeleteMarker: true,
			})
			if config.Limit > 0 && len(objects) >= config.Limit {
				return objects, nil
			}
		}

		if !aws.ToBool(result.IsTruncated) {
			break
		}
		keyMarker = result.NextKeyMarker
		versionIDMarker = result.NextVersionIdMarker
	}

	return objects, nil
}

// GetMetadata retrieves metadata for an object without downloading the content.
// Use opts to query a specific object version.
//
// Errors:
//   - ErrInvalidInput: If bucket is empty or key is invalid
//   - ErrObjectNotFound: If the specified object doesn't exist
//   - ErrAccessDenied: If the credentials lack permission to access
//   - Network errors or AWS SDK errors wrapped in Error type
//
// Example:
//
//	metadata, err := client.GetMetadata(ctx, "my-bucket", "document.pdf")
//	if err != nil {
//	    return fmt.Errorf("failed to get metadata: %w", err)
//	}
//	fmt.Printf("Content-Type: %s\n", metadata.ContentType)
func (c *Client) GetMetadata(ctx context.Context, bucket, key string, opts ...s3types.MetadataOption) (*s3types.ObjectMetadata, error) {
	if bucket == "" {
		return nil, s3errors.NewError("getMetadata", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("bucket name cannot be empty")
	}
	if err := validation.ValidateObjectKey(key); err != nil {
		return nil, s3errors.NewError("getMetadata", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage(err.Error())
	}

	// Apply metadata options
	config := &s3types.MetadataOptionConfig{}
	for _, opt := range opts {
		opt(config)
	}

	input := &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if config.VersionID != "" {
		input.VersionId = aws.String(config.VersionID)
	}

	result, err := c.s3Client.HeadObject(ctx, input)
	if err != nil {
		// HEAD requests surface missing objects as a bare 404
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, s3errors.NewObjectError("getMetadata", bucket, key, s3errors.ErrObjectNotFound)
		}
		return nil, s3errors.NewError("getMetadata", c.convertAWSError(err)).WithBucket(bucket).WithKey(key)
	}

	metadata := &s3types.ObjectMetadata{
		ContentType:   aws.ToString(result.ContentType),
		ContentLength: aws.ToInt64(result.ContentLength),
		LastModified:  aws.ToTime(result.LastModified),
		ETag:          aws.ToString(result.ETag),
		VersionID:     aws.ToString(result.VersionId),
		StorageClass:  string(result.StorageClass),
	}

	// Copy user metadata if present
	if result.Metadata != nil {
		metadata.Metadata = make(map[string]string, len(result.Metadata))
		for k, v := range result.Metadata {
			metadata.Metadata[k] = v
		}
	}

	return metadata, nil
}

// DeleteObject deletes a single object or object version.
// Without a version, buckets with versioning enabled get a delete
// marker instead of losing data; the result reports which happened.
//
// The operation is idempotent - deleting a non-existent key does not
// return an error.
//
// Errors:
//   - ErrInvalidInput: If bucket is empty or key is invalid
//   - ErrAccessDenied: If the credentials lack permission to delete
//   - Network errors or AWS SDK errors wrapped in Error type
func (c *Client) DeleteObject(ctx context.Context, bucket, key string, opts ...s3types.DeleteOption) (*s3types.DeleteObjectResult, error) {
	if bucket == "" {
		return nil, s3errors.NewError("deleteObject", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("bucket name cannot be empty")
	}
	if err := validation.ValidateObjectKey(key); err != nil {
		return nil, s3errors.NewError("deleteObject", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage(err.Error())
	}

	// Apply delete options
	config := &s3types.DeleteOptionConfig{}
	for _, opt := range opts {
		opt(config)
	}

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if config.VersionID != "" {
		input.VersionId = aws.String(config.VersionID)
	}

	result, err := c.s3Client.DeleteObject(ctx, input)
	if err != nil {
		return nil, s3errors.NewError("deleteObject", c.convertAWSError(err)).WithBucket(bucket).WithKey(key)
	}

	return &s3types.DeleteObjectResult{
		DeleteMarker: aws.ToBool(result.DeleteMarker),
		VersionID:    aws.ToString(result.VersionId),
	}, nil
}

// DeleteMany deletes multiple objects in a single batch operation.
// This uses S3's DeleteObjects API which can delete up to 1000 objects at once.
// Returns a DeleteResult containing information about successful and failed deletions.
//
// This is much more efficient than calling DeleteObject repeatedly.
// The operation is atomic per object - each deletion succeeds or fails independently.
//
// Errors:
//   - ErrInvalidInput: If bucket is empty, keys is empty, or >1000 keys provided
//   - ErrAccessDenied: If the credentials lack permission to delete
//   - ErrBucketNotFound: If the specified bucket doesn't exist
//   - Network errors or AWS SDK errors wrapped in Error type
//
// Example:
//
//	keys := []string{"file1.txt", "file2.txt", "file3.txt"}
//	result, err := client.DeleteMany(ctx, "my-bucket", keys)
//	if err != nil {
//	    return fmt.Errorf("batch delete failed: %w", err)
//	}
//	if len(result.Errors) > 0 {
//	    for _, e := range result.Errors {
//	        fmt.Printf("Failed to delete %s: %s\n", e.Key, e.Message)
//	    }
//	}
func (c *Client) DeleteMany(ctx context.Context, bucket string, keys []string) (*s3types.DeleteResult, error) {
	if bucket == "" {
		return nil, s3errors.NewError("deleteMany", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name cannot be empty")
	}
	if len(keys) == 0 {
		return nil, s3errors.NewError("deleteMany", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("keys cannot be empty")
	}
	if len(keys) > maxKeysPerPage {
		return nil, s3errors.NewError("deleteMany", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("too many keys: maximum is 1000 per request")
	}

	startTime := time.Now()

	// Build the delete request
	deleteObjects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			return nil, s3errors.NewError("deleteMany", s3errors.ErrInvalidInput).
				WithBucket(bucket).
				WithMessage("empty key in keys slice")
		}
		deleteObjects = append(deleteObjects, types.ObjectIdentifier{
			Key: aws.String(key),
		})
	}

	input := &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &types.Delete{
			Objects: deleteObjects,
		},
	}

	result, err := c.s3Client.DeleteObjects(ctx, input)
	if err != nil {
		return nil, s3errors.NewError("deleteMany", c.convertAWSError(err)).WithBucket(bucket)
	}

	// Process the result
	deleteResult := &s3types.DeleteResult{
		Duration: time.Since(startTime),
	}

	// Process successfully deleted objects
	if result.Deleted != nil {
		deleteResult.Deleted = make([]s3types.Object, 0, len(result.Deleted))
		for _, deleted := range result.Deleted {
			deleteResult.Deleted = append(deleteResult.Deleted, s3types.Object{
				Key: aws.ToString(deleted.Key),
			})
		}
	}

	// Process errors
	if result.Errors != nil {
		deleteResult.Errors = make([]s3types.DeleteError, 0, len(result.Errors))
		for _, derr := range result.Errors {
			deleteResult.Errors = append(deleteResult.Errors, s3types.DeleteError{
				Key:     aws.ToString(derr.Key),
				Version: aws.ToString(derr.VersionId),
				Code:    aws.ToString(derr.Code),
				Message: aws.ToString(derr.Message),
			})
		}
	}

	return deleteResult, nil
}

// EmptyBucket deletes all current objects in a bucket in batches.
// Object versions and delete markers are not removed, so a versioned
// bucket is not empty afterwards.
//
// Returns the aggregated delete result across all batches.
func (c *Client) EmptyBucket(ctx context.Context, bucket string) (*s3types.DeleteResult, error) {
	if bucket == "" {
		return nil, s3errors.NewError("emptyBucket", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name cannot be empty")
	}

	startTime := time.Now()
	total := &s3types.DeleteResult{}
	var continuationToken *string

	for {
		listResult, err := c.s3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			MaxKeys:           aws.Int32(maxKeysPerPage),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, s3errors.NewError("emptyBucket", c.convertAWSError(err)).WithBucket(bucket)
		}

		if len(listResult.Contents) > 0 {
			keys := make([]string, 0, len(listResult.Contents))
			for _, obj := range listResult.Contents {
				keys = append(keys, aws.ToString(obj.Key))
			}

			batch, err := c.DeleteMany(ctx, bucket, keys)
			if err != nil {
				return nil, err
			}
			total.Deleted = append(total.Deleted, batch.Deleted...)
			total.Errors = append(total.Errors, batch.Errors...)
		}

		if !aws.ToBool(listResult.IsTruncated) {
			break
		}
		continuationToken = listResult.NextContinuationToken
	}

	total.Duration = time.Since(startTime)
	return total, nil
}

// convertAWSError converts AWS SDK errors to our custom error types
func (c *Client) convertAWSError(err error) error {
	if err == nil {
		return nil
	}

	// Check for specific AWS SDK error types
	var bucketAlreadyExists *types.BucketAlreadyExists
	if errors.As(err, &bucketAlreadyExists) {
		return s3errors.ErrBucketAlreadyExists
	}

	var bucketAlreadyOwned *types.BucketAlreadyOwnedByYou
	if errors.As(err, &bucketAlreadyOwned) {
		return s3errors.ErrBucketAlreadyExists
	}

	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return s3errors.ErrBucketNotFound
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return s3errors.ErrObjectNotFound
	}

	// Fall back to the service error code for conditions the SDK
	// does not model as concrete types
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "BucketNotEmpty":
			return s3errors.ErrBucketNotEmpty
		case "NoSuchBucket":
			return s3errors.ErrBucketNotFound
		case "NoSuchKey":
			return s3errors.ErrObjectNotFound
		case "AccessDenied", "Forbidden":
			return s3errors.ErrAccessDenied
		case "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return s3errors.ErrInvalidCredentials
		}
	}

	// Return the original error if we can't convert it
	return err
}
