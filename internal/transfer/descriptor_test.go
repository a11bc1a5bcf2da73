package transfer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyForPath(t *testing.T) {
	tests := []struct {
		name      string
		localPath string
		prefix    string
		stripDirs bool
		want      string
	}{
		{
			name:      "strip directories keeps base name",
			localPath: "path/to/file.txt",
			prefix:    "prefix-",
			stripDirs: true,
			want:      "prefix-file.txt",
		},
		{
			name:      "keep directories preserves full path",
			localPath: "path/to/file.txt",
			prefix:    "prefix-",
			stripDirs: false,
			want:      "prefix-path/to/file.txt",
		},
		{
			name:      "empty prefix is a no-op",
			localPath: "path/to/file.txt",
			prefix:    "",
			stripDirs: false,
			want:      "path/to/file.txt",
		},
		{
			name:      "empty prefix with strip",
			localPath: "path/to/file.txt",
			prefix:    "",
			stripDirs: true,
			want:      "file.txt",
		},
		{
			name:      "bare file name",
			localPath: "file.txt",
			prefix:    "backup/",
			stripDirs: false,
			want:      "backup/file.txt",
		},
		{
			name:      "prefix without separator",
			localPath: "report.csv",
			prefix:    "2024",
			stripDirs: true,
			want:      "2024report.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyForPath(tt.localPath, tt.prefix, tt.stripDirs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDestinationPath(t *testing.T) {
	tests := []struct {
		name     string
		localDir string
		key      string
		want     string
	}{
		{
			name:     "leading separator stripped",
			localDir: "dir/",
			key:      "/a",
			want:     filepath.Join("dir", "a"),
		},
		{
			name:     "plain key joins below dir",
			localDir: "downloads",
			key:      "file.txt",
			want:     filepath.Join("downloads", "file.txt"),
		},
		{
			name:     "nested key keeps hierarchy",
			localDir: "out",
			key:      "reports/2024/summary.csv",
			want:     filepath.Join("out", "reports", "2024", "summary.csv"),
		},
		{
			name:     "current directory",
			localDir: ".",
			key:      "file.txt",
			want:     "file.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DestinationPath(tt.localDir, tt.key)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListLocalFiles(t *testing.T) {
	t.Run("returns regular files with walk paths", func(t *testing.T) {
		filesystem := billy.NewInMemoryFS()
		require.NoError(t, filesystem.WriteFile("data/a.txt", []byte("aaa"), 0o644))
		require.NoError(t, filesystem.WriteFile("data/sub/b.txt", []byte("bb"), 0o644))
		require.NoError(t, filesystem.WriteFile("other/c.txt", []byte("c"), 0o644))

		files, err := ListLocalFiles(context.Background(), filesystem, "data")
		require.NoError(t, err)
		require.Len(t, files, 2)

		byPath := make(map[string]int64)
		for _, f := range files {
			byPath[filepath.ToSlash(f.LocalPath)] = f.Size
			assert.Empty(t, f.Key)
		}
		assert.Equal(t, int64(3), byPath["data/a.txt"])
		assert.Equal(t, int64(2), byPath["data/sub/b.txt"])
	})

	t.Run("missing root returns error", func(t *testing.T) {
		filesystem := billy.NewInMemoryFS()

		_, err := ListLocalFiles(context.Background(), filesystem, "nope")
		require.Error(t, err)
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		filesystem := billy.NewInMemoryFS()
		require.NoError(t, filesystem.WriteFile("data/a.txt", []byte("aaa"), 0o644))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ListLocalFiles(ctx, filesystem, "data")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
