// Package recode runs the conversion session: it reads UTF-8 input in fixed
// chunks, re-encodes it to a wide-character form and counts the bytes that
// reach the output.
package recode

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/transform"

	"sconv/pkg/widechar"
)

// ChunkSize is how many bytes each read requests from the input.
const ChunkSize = 4095

// Options configures one conversion session.
type Options struct {
	Form     widechar.Form
	WriteBOM bool
}

// countingWriter tracks how many bytes actually reached the underlying
// writer, so the reported total stays correct even after a partial write.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Run converts the UTF-8 stream from in to wide-character bytes on out and
// returns the number of bytes written, byte order mark included.
//
// The encoder state persists across chunks: a multi-byte character split by
// the chunk boundary is held back and completed with the next read. Invalid
// UTF-8 encodes as U+FFFD. A read error ends the stream like EOF does; only
// write-side failures abort the session.
func Run(in io.Reader, out io.Writer, opts Options) (int64, error) {
	cw := &countingWriter{w: out}

	if opts.WriteBOM {
		if _, err := cw.Write(opts.Form.BOM()); err != nil {
			return cw.n, fmt.Errorf("failed to write byte order mark: %w", err)
		}
	}

	tw := transform.NewWriter(cw, opts.Form.NewEncoder())
	buf := make([]byte, ChunkSize)
	var chunks int
	for {
		n, err := in.Read(buf)
		if n > 0 {
			chunks++
			if _, werr := tw.Write(buf[:n]); werr != nil {
				return cw.n, fmt.Errorf("failed to write converted bytes: %w", werr)
			}
		}
		if err != nil {
			if err != io.EOF {
				slog.Debug("read ended with error, treating as end of stream", "error", err)
			}
			break
		}
	}
	// Close flushes carried-over state, including a replacement character
	// for an incomplete sequence at the very end of the input.
	if err := tw.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to flush converted bytes: %w", err)
	}

	slog.Debug("conversion finished", "form", opts.Form.String(), "chunks", chunks, "bytes", cw.n)
	return cw.n, nil
}
