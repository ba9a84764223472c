// core/motif/config.go
package motif

import (
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config holds Scanner parameters. Zero values mean "pick for me".
type Config struct {
	Workers   int  `validate:"gte=0,lte=4096"` // goroutines; 0 = GOMAXPROCS
	ChunkSize int  `validate:"gte=0"`          // offsets per job; 0 = auto
	Quiet     bool // suppress chunking warnings

	Logger *zerolog.Logger `validate:"-"` // nil = no logging
}

// minAutoChunk keeps auto-sized jobs from degenerating into one offset each.
const minAutoChunk = 4096

var validate = validator.New()

// EffectiveWorkers returns the worker count to use for a configured value.
func EffectiveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	return runtime.GOMAXPROCS(0)
}

// ComputeChunk decides how many offsets each job covers and returns any
// warnings. Rules:
//   - chunkSize > 0 is used as-is, clamped to the offset count
//   - chunkSize == 0 splits offsets into ~4 jobs per worker, never
//     smaller than minAutoChunk
func ComputeChunk(offsets, workers, chunkSize int) (int, []string) {
	if offsets <= 0 {
		return 0, nil
	}
	if chunkSize > 0 {
		if chunkSize > offsets {
			return offsets, []string{"chunk size exceeds offset count; scanning in one job"}
		}
		return chunkSize, nil
	}
	if workers < 1 {
		workers = 1
	}
	per := (offsets + 4*workers - 1) / (4 * workers)
	if per < minAutoChunk {
		per = minAutoChunk
	}
	if per > offsets {
		per = offsets
	}
	return per, nil
}
