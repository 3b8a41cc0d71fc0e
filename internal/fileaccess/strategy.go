package fileaccess

// Build-time I/O geometry.
const (
	BufferSize   = 8 << 20  // 8 MiB scratch buffer for buffered reads
	BufferAlign  = 4096     // page alignment of the scratch buffer
	MapThreshold = 10 << 20 // files strictly larger than this are mapped
)

// Strategy is how a file's bytes reach the digest.
type Strategy int

const (
	Buffered Strategy = iota
	Mapped
)

func (s Strategy) String() string {
	switch s {
	case Buffered:
		return "buffered"
	case Mapped:
		return "mapped"
	default:
		return "unknown"
	}
}

// Selector picks a strategy for a file of the given non-zero size.
type Selector func(size int64) Strategy

// Select maps files larger than MapThreshold and reads everything else
// through the scratch buffer.
func Select(size int64) Strategy {
	if size > MapThreshold {
		return Mapped
	}
	return Buffered
}
