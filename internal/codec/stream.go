package codec

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/beetlebugorg/tabgeo/internal/compress"
)

// Stream is the block-backed byte storage a ByteCursor reads and writes
// through. It stands in for the file's block allocator, which
// multiplexes header, object, and coordinate blocks from a file; Stream
// only needs to give the cursor addressable, growable bytes and report
// when a declared offset lands outside anything ever committed.
type Stream interface {
	// ReadAt copies len(p) bytes starting at off. It returns
	// io.ErrUnexpectedEOF-shaped behavior via ErrTruncatedRecord at the
	// ByteCursor layer, not here; Stream itself just reports how many
	// bytes it actually had.
	ReadAt(off int64, p []byte) (n int, err error)

	// WriteAt writes p at off, growing the stream if necessary.
	WriteAt(off int64, p []byte) (n int, err error)

	// Len returns the current stream length in bytes.
	Len() int64
}

// MemStream is an in-memory Stream, the concrete block-backed storage
// used by tests and by pkg/tab's FileHandle. It also tracks a content
// checksum per committed segment (see Commit) so a seek to an offset
// that was never committed can be reported as ErrCoordBlockFault rather
// than silently reading zero bytes.
type MemStream struct {
	buf     []byte
	commits []commitRecord
}

type commitRecord struct {
	start, end int64
	digest     uint64

	// codec/compressed are set when the commit went through
	// CommitCompressed: compressed holds the block's on-disk
	// representation under codec, and ReadAt serves reads in [start,
	// end) by decompressing it rather than reading buf directly. Nil
	// codec means the segment was committed uncompressed via Commit.
	codec      compress.Codec
	compressed []byte
}

// NewMemStream returns an empty in-memory stream.
func NewMemStream() *MemStream {
	return &MemStream{}
}

func (s *MemStream) Len() int64 {
	return int64(len(s.buf))
}

func (s *MemStream) ReadAt(off int64, p []byte) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("codec: negative offset %d", off)
	}
	if rec, ok := s.compressedCovering(off); ok {
		raw, err := rec.codec.Decompress(rec.compressed)
		if err != nil {
			return 0, fmt.Errorf("codec: decompressing committed block [%d,%d): %w", rec.start, rec.end, err)
		}
		idx := off - rec.start
		if idx >= int64(len(raw)) {
			return 0, nil
		}
		return copy(p, raw[idx:]), nil
	}
	if off >= int64(len(s.buf)) {
		return 0, nil
	}
	n := copy(p, s.buf[off:])
	return n, nil
}

// compressedCovering returns the commit record covering off, if any and
// if it was committed through CommitCompressed.
func (s *MemStream) compressedCovering(off int64) (commitRecord, bool) {
	for _, c := range s.commits {
		if c.codec != nil && off >= c.start && off < c.end {
			return c, true
		}
	}
	return commitRecord{}, false
}

func (s *MemStream) WriteAt(off int64, p []byte) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("codec: negative offset %d", off)
	}
	end := off + int64(len(p))
	if end > int64(len(s.buf)) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[off:end], p)
	return len(p), nil
}

// Commit records [start, end) as a hashed, addressable segment (a
// committed feature record or coordinate run). CoordBlockFault checks
// against these ranges.
func (s *MemStream) Commit(start, end int64) {
	if end <= start {
		return
	}
	s.commits = append(s.commits, commitRecord{
		start: start, end: end,
		digest: xxhash.Sum64(s.buf[start:end]),
	})
}

// CommitCompressed records [start, end) the same way Commit does, but
// additionally runs the block through codec: compresses it, verifies
// the compressed form decompresses back to the exact original bytes,
// and stores the compressed form so ReadAt serves later reads in this
// range by decompressing it. Returns an error if codec fails either
// direction or the round trip doesn't reproduce the original bytes.
func (s *MemStream) CommitCompressed(start, end int64, codec compress.Codec) error {
	if end <= start {
		return nil
	}
	raw := s.buf[start:end]
	compressed, err := codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("codec: compressing block [%d,%d): %w", start, end, err)
	}
	decompressed, err := codec.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("codec: decompressing block [%d,%d) for round-trip check: %w", start, end, err)
	}
	if !bytes.Equal(decompressed, raw) {
		return fmt.Errorf("codec: block [%d,%d) failed compress round trip", start, end)
	}
	s.commits = append(s.commits, commitRecord{
		start: start, end: end,
		digest:     xxhash.Sum64(raw),
		codec:      codec,
		compressed: compressed,
	})
	return nil
}

// Covered reports whether off falls within any committed segment, and
// returns that segment's checksum.
func (s *MemStream) Covered(off int64) (uint64, bool) {
	for _, c := range s.commits {
		if off >= c.start && off < c.end {
			return c.digest, true
		}
	}
	return 0, false
}

// Digest returns the xxhash64 of every committed segment's content
// hash, folded together — a cheap whole-stream integrity fingerprint
// FileHandle.Stats() exposes.
func (s *MemStream) Digest() uint64 {
	var acc uint64
	for _, c := range s.commits {
		acc = acc*1099511628211 ^ c.digest
	}
	return acc
}

// Bytes returns the stream's current backing bytes. The caller must not
// retain or mutate the slice beyond the stream's lifetime.
func (s *MemStream) Bytes() []byte {
	return s.buf
}
