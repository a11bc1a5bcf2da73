package transfer

import (
	"context"
	"fmt"
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

// ListLocalFiles walks root and returns a Descriptor for every regular
// file found. Paths are kept exactly as the walk produced them so
// callers can derive object keys with KeyForPath.
func ListLocalFiles(ctx context.Context, filesystem fs.Filesystem, root string) ([]Descriptor, error) {
	var files []Descriptor

	err := filesystem.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		// Check if context is cancelled
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		files = append(files, Descriptor{
			LocalPath: path,
			Size:      info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", root, err)
	}

	return files, nil
}
