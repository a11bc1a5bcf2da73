package s3client

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thobiast/s3-client/internal/testutil"
	"github.com/thobiast/s3-client/s3types"
)

// TestClient_UploadFile_WithMemoryFS tests UploadFile against an in-memory filesystem.
func TestClient_UploadFile_WithMemoryFS(t *testing.T) {
	tests := []struct {
		name        string
		bucket      string
		key         string
		filepath    string
		fileContent string
		setupFS     func(*billy.FS) error
		setupMock   func(*testutil.MockS3Client)
		opts        []s3types.UploadOption
		wantErr     bool
		errContains string
	}{
		{
			name:        "successful upload",
			bucket:      "test-bucket",
			key:         "backup/file.txt",
			filepath:    "/data/file.txt",
			fileContent: "Hello from memory filesystem!",
			setupFS: func(fs *billy.FS) error {
				if err := fs.MkdirAll("/data", 0o755); err != nil {
					return err
				}
				return fs.WriteFile("/data/file.txt", []byte("Hello from memory filesystem!"), 0o644)
			},
			setupMock: func(m *testutil.MockS3Client) {
				m.PutObjectFunc = func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
					assert.Equal(t, "test-bucket", aws.ToString(params.Bucket))
					assert.Equal(t, "backup/file.txt", aws.ToString(params.Key))

					body, err := io.ReadAll(params.Body)
					require.NoError(t, err)
					assert.Equal(t, "Hello from memory filesystem!", string(body))

					return &s3.PutObjectOutput{
						ETag:      aws.String(`"mock-etag-memory"`),
						VersionId: aws.String("v1"),
					}, nil
				}
			},
			wantErr: false,
		},
		{
			name:        "json content type is detected from content",
			bucket:      "test-bucket",
			key:         "data.json",
			filepath:    "/data.json",
			fileContent: `{"name": "test", "value": 123}`,
			setupFS: func(fs *billy.FS) error {
				return fs.WriteFile("/data.json", []byte(`{"name": "test", "value": 123}`), 0o644)
			},
			setupMock: func(m *testutil.MockS3Client) {
				m.PutObjectFunc = func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
					assert.Contains(t, aws.ToString(params.ContentType), "json")
					return &s3.PutObjectOutput{ETag: aws.String(`"mock-etag-json"`)}, nil
				}
			},
			wantErr: false,
		},
		{
			name:     "missing file",
			bucket:   "test-bucket",
			key:      "missing.txt",
			filepath: "/nonexistent.txt",
			setupFS: func(fs *billy.FS) error {
				return nil
			},
			wantErr:     true,
			errContains: "failed to stat file",
		},
		{
			name:     "directory instead of file",
			bucket:   "test-bucket",
			key:      "dir-key",
			filepath: "/testdir",
			setupFS: func(fs *billy.FS) error {
				return fs.MkdirAll("/testdir", 0o755)
			},
			wantErr:     true,
			errContains: "path is a directory, not a file",
		},
		{
			name:        "user metadata is forwarded",
			bucket:      "test-bucket",
			key:         "metadata.txt",
			filepath:    "/metadata.txt",
			fileContent: "file with metadata",
			setupFS: func(fs *billy.FS) error {
				return fs.WriteFile("/metadata.txt", []byte("file with metadata"), 0o644)
			},
			setupMock: func(m *testutil.MockS3Client) {
				m.PutObjectFunc = func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
					require.NotNil(t, params.Metadata)
					assert.Equal(t, "ops", params.Metadata["uploaded-by"])
					return &s3.PutObjectOutput{ETag: aws.String(`"mock-etag-metadata"`)}, nil
				}
			},
			opts: []s3types.UploadOption{
				WithMetadata(map[string]string{"uploaded-by": "ops"}),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memFS := billy.NewInMemoryFS()
			if tt.setupFS != nil {
				require.NoError(t, tt.setupFS(memFS), "failed to setup filesystem")
			}

			mockClient := &testutil.MockS3Client{}
			if tt.setupMock != nil {
				tt.setupMock(mockClient)
			}

			client := NewWithClient(mockClient)
			client.SetFilesystem(memFS)

			result, err := client.UploadFile(context.Background(), tt.bucket, tt.key, tt.filepath, tt.opts...)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.key, result.Key)
			assert.Equal(t, int64(len(tt.fileContent)), result.Size)
			assert.NotEmpty(t, result.ETag)
		})
	}
}

// TestClient_DownloadFile_WithMemoryFS tests DownloadFile against an in-memory filesystem.
func TestClient_DownloadFile_WithMemoryFS(t *testing.T) {
	data := []byte("downloaded object payload")

	newMock := func() *testutil.MockS3Client {
		return &testutil.MockS3Client{
			HeadObjectFunc: func(ctx context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
				return &s3.HeadObjectOutput{
					ContentLength: aws.Int64(int64(len(data))),
					ETag:          aws.String(`"download-etag"`),
				}, nil
			},
			GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
				return testutil.CreateGetObjectOutput(data, "application/octet-stream"), nil
			},
		}
	}

	t.Run("writes object to destination", func(t *testing.T) {
		memFS := billy.NewInMemoryFS()
		client := NewWithClient(newMock())
		client.SetFilesystem(memFS)

		result, err := client.DownloadFile(context.Background(), "test-bucket", "restore.bin", "/restore.bin")
		require.NoError(t, err)
		assert.Equal(t, int64(len(data)), result.Size)
		assert.Equal(t, `"download-etag"`, result.ETag)

		written, err := memFS.ReadFile("/restore.bin")
		require.NoError(t, err)
		assert.Equal(t, data, written)
	})

	t.Run("creates missing destination directories", func(t *testing.T) {
		memFS := billy.NewInMemoryFS()
		client := NewWithClient(newMock())
		client.SetFilesystem(memFS)

		_, err := client.DownloadFile(context.Background(), "test-bucket", "restore.bin", "/backups/2024/restore.bin")
		require.NoError(t, err)

		written, err := memFS.ReadFile("/backups/2024/restore.bin")
		require.NoError(t, err)
		assert.Equal(t, data, written)
	})
}

// TestClient_ContentTypeDetection_WithMemoryFS tests content type detection
// from file content with extension fallbacks.
func TestClient_ContentTypeDetection_WithMemoryFS(t *testing.T) {
	tests := []struct {
		name            string
		filepath        string
		fileContent     []byte
		expectedType    string
		expectedPartial string // for partial matching when the exact type may vary
	}{
		{
			name:         "json from content",
			filepath:     "/config.json",
			fileContent:  []byte(`{"valid": "json"}`),
			expectedType: "application/json",
		},
		{
			name:         "plain text from content",
			filepath:     "/readme.txt",
			fileContent:  []byte("This is plain text content"),
			expectedType: "text/plain; charset=utf-8",
		},
		{
			name:            "html from content",
			filepath:        "/index.html",
			fileContent:     []byte("<!DOCTYPE html><html><body>Hello</body></html>"),
			expectedPartial: "html",
		},
		{
			name:            "pdf from magic bytes",
			filepath:        "/document.pdf",
			fileContent:     []byte("%PDF-1.5\n"),
			expectedPartial: "pdf",
		},
		{
			name:         "binary content with unknown extension",
			filepath:     "/blob.xyz",
			fileContent:  []byte{0x00, 0x01, 0x02, 0x03},
			expectedType: "application/octet-stream",
		},
		{
			name:         "empty file falls back to extension",
			filepath:     "/notes.txt",
			fileContent:  nil,
			expectedType: "text/plain; charset=utf-8",
		},
		{
			name:         "empty file without extension uses the default",
			filepath:     "/LICENSE",
			fileContent:  nil,
			expectedType: DefaultContentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memFS := billy.NewInMemoryFS()
			require.NoError(t, memFS.WriteFile(tt.filepath, tt.fileContent, 0o644))

			client := NewWithClient(&testutil.MockS3Client{})
			client.SetFilesystem(memFS)

			contentType := client.detectContentType(tt.filepath)

			if tt.expectedType != "" {
				assert.Equal(t, tt.expectedType, contentType)
			} else {
				assert.Contains(t, contentType, tt.expectedPartial)
			}
		})
	}
}

// TestClient_WithCustomFilesystemOption tests the WithFilesystem client option.
func TestClient_WithCustomFilesystemOption(t *testing.T) {
	memFS := billy.NewInMemoryFS()
	require.NoError(t, memFS.WriteFile("/test.txt", []byte("custom fs content"), 0o644))

	mockClient := &testutil.MockS3Client{
		PutObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			body, readErr := io.ReadAll(params.Body)
			require.NoError(t, readErr)
			assert.Equal(t, "custom fs content", string(body))

			return &s3.PutObjectOutput{ETag: aws.String(`"mock-etag"`)}, nil
		},
	}

	client, err := New(
		WithFilesystem(memFS),
		WithRegion("us-west-2"),
	)
	require.NoError(t, err)

	// Swap in the mock so no network calls happen
	client.s3Client = mockClient

	result, err := client.UploadFile(context.Background(), "test-bucket", "test-key", "/test.txt")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "test-key", result.Key)
	assert.Equal(t, int64(len("custom fs content")), result.Size)
}
