package transfer

import (
	"fmt"
	"io"
	"sync"

	"github.com/thobiast/s3-client/s3types"
)

// progressReader wraps an io.Reader and reports cumulative bytes read.
// It deliberately exposes only Read so the upload manager streams the
// body sequentially instead of seeking into it from multiple
// goroutines.
type progressReader struct {
	reader  io.Reader
	tracker s3types.ProgressTracker
	total   int64

	mu   sync.Mutex
	read int64
}

func newProgressReader(r io.Reader, tracker s3types.ProgressTracker, total int64) *progressReader {
	return &progressReader{
		reader:  r,
		tracker: tracker,
		total:   total,
	}
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		pr.mu.Lock()
		pr.read += int64(n)
		read := pr.read
		pr.mu.Unlock()
		if pr.tracker != nil {
			pr.tracker.Update(read, pr.total)
		}
	}
	//nolint:wrapcheck // io.Reader interface contract - error comes from underlying reader
	return n, err
}

// sequentialWriterAt adapts a plain io.Writer to io.WriterAt for the
// download manager. It requires offsets to arrive in order, which
// holds when the manager runs with concurrency 1.
type sequentialWriterAt struct {
	writer  io.Writer
	tracker s3types.ProgressTracker
	total   int64
	written int64
}

func (w *sequentialWriterAt) WriteAt(p []byte, off int64) (int, error) {
	if off != w.written {
		return 0, fmt.Errorf("non-sequential write at offset %d, expected %d", off, w.written)
	}

	n, err := w.writer.Write(p)
	w.written += int64(n)
	if n > 0 && w.tracker != nil {
		w.tracker.Update(w.written, w.total)
	}
	//nolint:wrapcheck // io.Writer interface contract - error comes from underlying writer
	return n, err
}
