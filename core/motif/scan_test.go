package motif

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nucmotif/core/nucleotide"
)

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Workers: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = New(Config{ChunkSize: -5})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = New(Config{Workers: 5000})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	s, err := New(Config{})
	require.NoError(t, err)
	assert.NotNil(t, s)
}

// The pool must agree with the sequential scan for every split.
func TestScannerMatchesFindAll(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	configs := []Config{
		{},
		{Workers: 1, ChunkSize: 1},
		{Workers: 3, ChunkSize: 7},
		{Workers: 8, ChunkSize: 2},
		{Workers: 2, ChunkSize: 1 << 20, Quiet: true},
	}
	for _, cfg := range configs {
		s, err := New(cfg)
		require.NoError(t, err)
		for i := 0; i < 50; i++ {
			seq := randomSeq(r, r.Intn(500))
			m := randomMotif(r, 1+r.Intn(4))

			want, err := FindAll(seq, m)
			require.NoError(t, err)
			got, err := s.FindAll(context.Background(), seq, m)
			require.NoError(t, err)
			assert.Equal(t, len(want), len(got), "cfg=%+v", cfg)
			if len(want) > 0 {
				assert.Equal(t, want, got, "cfg=%+v", cfg)
			}

			ok, err := s.Exists(context.Background(), seq, m)
			require.NoError(t, err)
			assert.Equal(t, len(want) > 0, ok)
		}
	}
}

func TestScannerScenarios(t *testing.T) {
	s, err := New(Config{Workers: 4, ChunkSize: 1})
	require.NoError(t, err)
	ctx := context.Background()

	got, err := s.FindAll(ctx, seqOf("AGGTCA"), motifOf("ASNNCA"))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)

	got, err = s.FindAll(ctx, seqOf("AAA"), motifOf("AA"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	got, err = s.FindAll(ctx, seqOf("CCC"), motifOf("A"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.FindAll(ctx, seqOf("A"), motifOf("AA"))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.FindAll(ctx, seqOf("ACGT"), Motif{})
	assert.ErrorIs(t, err, ErrInvalidMotif)
	_, err = s.Exists(ctx, seqOf("ACGT"), nil)
	assert.ErrorIs(t, err, ErrInvalidMotif)
}

func TestScannerCancelledReturnsNoPartialResult(t *testing.T) {
	s, err := New(Config{Workers: 4, ChunkSize: 16})
	require.NoError(t, err)

	seq := make(nucleotide.Sequence, 1<<16)
	for i := range seq {
		seq[i] = nucleotide.A
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := s.FindAll(ctx, seq, motifOf("AA"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)

	ok, err := s.Exists(ctx, seq, motifOf("AA"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

// Whatever the timing, a scan either completes in full or reports the
// cancellation.
func TestScannerCancelMidScan(t *testing.T) {
	s, err := New(Config{Workers: 2, ChunkSize: 8})
	require.NoError(t, err)

	seq := make(nucleotide.Sequence, 1<<15)
	for i := range seq {
		seq[i] = nucleotide.C
	}
	want := len(seq) - 1

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var (
		got  []int
		gerr error
	)
	go func() {
		defer close(done)
		got, gerr = s.FindAll(ctx, seq, motifOf("CC"))
	}()
	cancel()
	<-done

	if gerr != nil {
		assert.ErrorIs(t, gerr, context.Canceled)
		assert.Nil(t, got)
	} else {
		assert.Len(t, got, want)
	}
}

func TestScannerLogs(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s, err := New(Config{Workers: 1, ChunkSize: 100, Logger: &l})
	require.NoError(t, err)

	_, err = s.FindAll(context.Background(), seqOf("ACGT"), motifOf("A"))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"component":"motif.scanner"`)
	assert.Contains(t, out, "chunk size exceeds offset count")
	assert.Contains(t, out, "scan done")
}

func TestComputeChunk(t *testing.T) {
	c, warns := ComputeChunk(0, 4, 0)
	assert.Zero(t, c)
	assert.Empty(t, warns)

	c, warns = ComputeChunk(100, 4, 10)
	assert.Equal(t, 10, c)
	assert.Empty(t, warns)

	c, warns = ComputeChunk(100, 4, 1000)
	assert.Equal(t, 100, c)
	assert.Len(t, warns, 1)

	c, _ = ComputeChunk(100, 4, 0)
	assert.Equal(t, 100, c, "small inputs stay in one job")

	c, _ = ComputeChunk(1<<20, 4, 0)
	assert.Equal(t, (1<<20)/16, c)

	assert.Equal(t, 3, EffectiveWorkers(3))
	assert.GreaterOrEqual(t, EffectiveWorkers(0), 1)
}
