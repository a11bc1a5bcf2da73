package transfer

import (
	"bytes"
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thobiast/s3-client/internal/testutil"
)

func TestDownloader_Download(t *testing.T) {
	t.Run("successful download", func(t *testing.T) {
		content := []byte("Hello, download!")
		mock := &testutil.MockS3Client{
			GetObjectFunc: func(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
				assert.Equal(t, "test-bucket", aws.ToString(input.Bucket))
				assert.Equal(t, "docs/readme.txt", aws.ToString(input.Key))
				return testutil.CreateGetObjectOutput(content, "text/plain"), nil
			},
		}

		var buf bytes.Buffer
		downloader := NewDownloader(mock, 0)
		result, err := downloader.Download(context.Background(), DownloadInput{
			Bucket: "test-bucket",
			Key:    "docs/readme.txt",
			Size:   int64(len(content)),
			Writer: &buf,
		})

		require.NoError(t, err)
		assert.Equal(t, content, buf.Bytes())
		assert.Equal(t, "docs/readme.txt", result.Key)
		assert.Equal(t, int64(len(content)), result.Size)
	})

	t.Run("version id forwarded", func(t *testing.T) {
		content := []byte("old version")
		mock := &testutil.MockS3Client{
			GetObjectFunc: func(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
				assert.Equal(t, "v123", aws.ToString(input.VersionId))
				return testutil.CreateGetObjectOutput(content, "text/plain"), nil
			},
		}

		var buf bytes.Buffer
		downloader := NewDownloader(mock, 0)
		_, err := downloader.Download(context.Background(), DownloadInput{
			Bucket:    "test-bucket",
			Key:       "versioned.txt",
			VersionID: "v123",
			Size:      int64(len(content)),
			Writer:    &buf,
		})

		require.NoError(t, err)
		assert.Equal(t, content, buf.Bytes())
	})

	t.Run("progress tracked to completion", func(t *testing.T) {
		content := []byte("progress bytes here")
		mock := &testutil.MockS3Client{
			GetObjectFunc: func(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
				return testutil.CreateGetObjectOutput(content, "text/plain"), nil
			},
		}

		var buf bytes.Buffer
		tracker := &testutil.MockProgressTracker{}
		downloader := NewDownloader(mock, 0)
		_, err := downloader.Download(context.Background(), DownloadInput{
			Bucket:  "test-bucket",
			Key:     "tracked.txt",
			Size:    int64(len(content)),
			Writer:  &buf,
			Tracker: tracker,
		})

		require.NoError(t, err)
		assert.True(t, tracker.UpdateCalled)
		assert.True(t, tracker.CompleteCalled)
		assert.Equal(t, int64(len(content)), tracker.BytesTransferred)
	})

	t.Run("missing object surfaces error", func(t *testing.T) {
		mock := &testutil.MockS3Client{
			GetObjectFunc: func(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
				return nil, &awstypes.NoSuchKey{Message: aws.String("The specified key does not exist.")}
			},
		}

		var buf bytes.Buffer
		tracker := &testutil.MockProgressTracker{}
		downloader := NewDownloader(mock, 0)
		_, err := downloader.Download(context.Background(), DownloadInput{
			Bucket:  "test-bucket",
			Key:     "missing.txt",
			Writer:  &buf,
			Tracker: tracker,
		})

		require.Error(t, err)
		assert.True(t, tracker.ErrorCalled)
		assert.Zero(t, buf.Len())
	})
}
