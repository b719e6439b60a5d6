package xmldoc

import (
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// sizeTier picks an initial slice capacity for internal Lex/Segment
// buffers. The teacher hand-tunes a fixed XMLBUFSIZE and a fixed
// farmSize for its node allocator; this module generalizes that to the
// host's available memory instead of a single constant, the same
// tiering idea devcmd uses for its pooled token slices (small/medium/
// large) but grounded on a real measurement rather than a guess.
type sizeTier int

const (
	tierSmall sizeTier = iota
	tierMedium
	tierLarge
)

// totalSystemMemory is overridden in tests to avoid depending on the
// host's actual RAM for deterministic tier assertions.
var totalSystemMemory = memory.TotalMemory

func tierFor(inputLen int) sizeTier {
	switch {
	case inputLen > 1<<20 && totalSystemMemory() >= 4<<30:
		return tierLarge
	case inputLen > 1 << 14:
		return tierMedium
	default:
		return tierSmall
	}
}

// capacityHint returns a starting slice capacity for the given tier,
// used when preallocating Lex/Segment slices.
func (t sizeTier) capacityHint() int {
	switch t {
	case tierLarge:
		return 4096
	case tierMedium:
		return 256
	default:
		return 16
	}
}

// wideScanAvailable reports whether the host CPU exposes a SIMD unit
// wide enough to make a word-at-a-time ASCII scan worthwhile. Used by
// the character-class iterator's letter/digit run scanner
// (asciiRunEnd) to pick between a chunked and a byte-at-a-time loop,
// mirroring the teacher's isBlank/isFirst/
// isElement lookup-table fast path with a CPU-aware variant instead of
// a fixed table.
func wideScanAvailable() bool {
	return cpuid.CPU.AVX2()
}
