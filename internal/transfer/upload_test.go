package transfer

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thobiast/s3-client/internal/testutil"
	"github.com/thobiast/s3-client/s3types"
)

func TestUploader_Upload(t *testing.T) {
	tests := []struct {
		name     string
		input    UploadInput
		mockFunc func(*testutil.MockS3Client)
		wantErr  bool
	}{
		{
			name: "successful upload",
			input: UploadInput{
				Bucket:      "test-bucket",
				Key:         "docs/readme.txt",
				Body:        strings.NewReader("Hello, World!"),
				Size:        13,
				ContentType: "text/plain",
			},
			mockFunc: func(m *testutil.MockS3Client) {
				m.PutObjectFunc = func(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
					assert.Equal(t, "test-bucket", aws.ToString(input.Bucket))
					assert.Equal(t, "docs/readme.txt", aws.ToString(input.Key))
					assert.Equal(t, "text/plain", aws.ToString(input.ContentType))

					body, err := io.ReadAll(input.Body)
					require.NoError(t, err)
					assert.Equal(t, "Hello, World!", string(body))

					return &s3.PutObjectOutput{
						ETag:      aws.String(`"test-etag"`),
						VersionId: aws.String("v1"),
					}, nil
				}
			},
		},
		{
			name: "metadata and storage class forwarded",
			input: UploadInput{
				Bucket:       "test-bucket",
				Key:          "archive.bin",
				Body:         strings.NewReader("payload"),
				Size:         7,
				ContentType:  "application/octet-stream",
				Metadata:     map[string]string{"author": "tester"},
				StorageClass: s3types.StorageClassStandardIA,
			},
			mockFunc: func(m *testutil.MockS3Client) {
				m.PutObjectFunc = func(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
					assert.Equal(t, "tester", input.Metadata["author"])
					assert.Equal(t, awstypes.StorageClassStandardIa, input.StorageClass)
					if input.Body != nil {
						_, _ = io.Copy(io.Discard, input.Body)
					}
					return &s3.PutObjectOutput{ETag: aws.String(`"etag"`)}, nil
				}
			},
		},
		{
			name: "upload failure surfaces error",
			input: UploadInput{
				Bucket: "test-bucket",
				Key:    "broken.txt",
				Body:   strings.NewReader("data"),
				Size:   4,
			},
			mockFunc: func(m *testutil.MockS3Client) {
				m.PutObjectFunc = func(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
					return nil, assert.AnError
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &testutil.MockS3Client{}
			tt.mockFunc(mock)

			uploader := NewUploader(mock, 0, 0)
			result, err := uploader.Upload(context.Background(), tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.input.Key, result.Key)
			assert.Equal(t, tt.input.Size, result.Size)
			assert.NotEmpty(t, result.ETag)
			assert.GreaterOrEqual(t, result.Duration.Nanoseconds(), int64(0))
		})
	}
}

func TestUploader_Upload_Progress(t *testing.T) {
	t.Run("tracker completes on success", func(t *testing.T) {
		mock := testutil.NewMockBuilder().WithSuccessfulUpload().Build()
		tracker := &testutil.MockProgressTracker{}

		uploader := NewUploader(mock, 0, 0)
		_, err := uploader.Upload(context.Background(), UploadInput{
			Bucket:  "test-bucket",
			Key:     "tracked.txt",
			Body:    strings.NewReader("tracked content"),
			Size:    15,
			Tracker: tracker,
		})

		require.NoError(t, err)
		assert.True(t, tracker.UpdateCalled)
		assert.True(t, tracker.CompleteCalled)
		assert.Equal(t, int64(15), tracker.BytesTransferred)
		assert.Equal(t, int64(15), tracker.TotalBytes)
	})

	t.Run("tracker receives error on failure", func(t *testing.T) {
		mock := testutil.NewMockBuilder().WithFailedUpload(assert.AnError).Build()
		tracker := &testutil.MockProgressTracker{}

		uploader := NewUploader(mock, 0, 0)
		_, err := uploader.Upload(context.Background(), UploadInput{
			Bucket:  "test-bucket",
			Key:     "tracked.txt",
			Body:    strings.NewReader("tracked content"),
			Size:    15,
			Tracker: tracker,
		})

		require.Error(t, err)
		assert.True(t, tracker.ErrorCalled)
		assert.False(t, tracker.CompleteCalled)
	})
}
