package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/config"
	perrors "github.com/lgbarn/pocketchess/internal/errors"
	"github.com/lgbarn/pocketchess/internal/output"
	"github.com/lgbarn/pocketchess/internal/testutil"
	"github.com/lgbarn/pocketchess/internal/worker"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		applyFlags(cfg)
		assert.Equal(t, 3, cfg.Search.Depth)
		assert.True(t, cfg.Search.Pruning)
		assert.Equal(t, 1, cfg.Workers)
		assert.Equal(t, config.OutputConfig{ShowSAN: true, ShowNodes: true}, *cfg.Output)
		assert.Equal(t, 1, cfg.Verbosity)
		assert.False(t, cfg.Duplicate.Suppress)
	})

	t.Run("everything set", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(jsonStream, true)()
		defer saveRestoreBool(noSAN, true)()
		defer saveRestoreBool(showBoard, true)()
		defer saveRestoreBool(noNodes, true)()
		defer saveRestoreBool(noPrune, true)()
		defer saveRestoreInt(depth, 2)()
		defer saveRestoreInt(workers, 4)()
		defer saveRestoreBool(verbose, true)()

		cfg := config.NewConfig()
		applyFlags(cfg)
		assert.Equal(t, config.OutputConfig{JSONFormat: true, JSONStream: true, ShowBoard: true}, *cfg.Output)
		assert.Equal(t, 2, cfg.Search.Depth)
		assert.False(t, cfg.Search.Pruning)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, 2, cfg.Verbosity)
	})

	t.Run("duplicate file implies suppression", func(t *testing.T) {
		defer saveRestoreString(duplicateFile, "dups.fen")()
		defer saveRestoreBool(exactDuplicates, true)()

		cfg := config.NewConfig()
		applyFlags(cfg)
		assert.True(t, cfg.Duplicate.Suppress)
		assert.True(t, cfg.Duplicate.Exact)
	})

	t.Run("quiet wins over verbose", func(t *testing.T) {
		defer saveRestoreBool(quiet, true)()
		defer saveRestoreBool(verbose, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		assert.Equal(t, 0, cfg.Verbosity)
	})
}

func TestReadPositions(t *testing.T) {
	in := strings.NewReader(`# puzzles
` + testutil.MateInOneFEN + `

   ` + testutil.KingsOnlyFEN + `
#` + testutil.FoolsMateFEN + `
`)
	fens, err := readPositions(in)
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.MateInOneFEN, testutil.KingsOnlyFEN}, fens)
}

func TestAnalyzePosition(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSearchDepth(2).WithVerbosity(0).Build()
	logger := cfg.Logger("analyze: ", 2)

	tests := []struct {
		name       string
		fen        string
		wantStatus chess.Status
		wantMove   string
		wantSAN    string
		wantErr    error
	}{
		{"mate in one", testutil.MateInOneFEN, chess.Playing, "a1a8", "Ra8#", nil},
		{"black mate in one", testutil.BlackMateInOneFEN, chess.Playing, "h3h2", "Qxh2#", nil},
		{"checkmated", testutil.FoolsMateFEN, chess.Checkmate, "", "", nil},
		{"stalemated", testutil.QueenStalemateFEN, chess.Stalemate, "", "", nil},
		{"in check", "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", chess.Check, "e1e2", "Kxe2", nil},
		{"bad fen", "8/8/8 w - - 0 1", chess.Playing, "", "", perrors.ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzePosition(worker.WorkItem{FEN: tt.fen, Index: 7}, cfg, logger)
			a, ok := result.Analysis.(*output.Analysis)
			require.True(t, ok, "Analysis = %T", result.Analysis)
			assert.Equal(t, 7, a.Index)
			assert.Equal(t, tt.fen, a.FEN)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(a.Err, tt.wantErr), "got %v", a.Err)
				assert.True(t, errors.Is(result.Error, tt.wantErr), "got %v", result.Error)
				require.Error(t, a.Err)
				assert.True(t, strings.HasPrefix(a.Err.Error(), "position 7: "), "err %q lacks position context", a.Err)
				return
			}
			require.NoError(t, a.Err)
			assert.Equal(t, tt.wantStatus, a.Status)
			if tt.wantMove == "" {
				assert.False(t, a.HasMove, "unexpected best move %s", a.Move)
				return
			}
			require.True(t, a.HasMove)
			assert.Equal(t, tt.wantMove, a.Move.String())
			assert.Equal(t, tt.wantSAN, a.SAN)
			assert.Equal(t, 2, a.Depth)
			assert.NotZero(t, a.Nodes)
		})
	}
}

func TestAnalyzeAll_OrderedText(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithSearchDepth(2).
		WithWorkers(3).
		WithOutput(&out).
		WithLog(&logs).
		Build()

	fens := []string{
		testutil.MidgameFEN,
		testutil.MateInOneFEN,
		"garbage",
		testutil.QueenStalemateFEN,
		testutil.KingsOnlyFEN,
	}
	written, failed, err := analyzeAll(fens, cfg, output.NewWriter(&out, cfg), nil)
	require.NoError(t, err)
	assert.Equal(t, len(fens), written)
	assert.Equal(t, 1, failed)

	got := out.String()
	last := -1
	for i := range fens {
		tag := `[Position "` + string(rune('1'+i)) + `"]`
		pos := strings.Index(got, tag)
		require.GreaterOrEqual(t, pos, 0, "missing %s", tag)
		assert.Greater(t, pos, last, "%s out of order", tag)
		last = pos
	}
	assert.Contains(t, got, `[BestMove "a1a8"]`)
	assert.Contains(t, got, `[Score "#1"]`)
	assert.Contains(t, got, `[Status "Stalemate"]`)
	assert.Zero(t, logs.Len(), "unexpected diagnostics at verbosity 1: %s", logs.String())
}

func TestAnalyzeAll_JSON(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithSearchDepth(1).WithJSONOutput(true).WithOutput(&out).Build()

	written, failed, err := analyzeAll([]string{testutil.KingsOnlyFEN}, cfg, output.NewWriter(&out, cfg), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, written)
	assert.Equal(t, 0, failed)
	assert.True(t, strings.HasPrefix(out.String(), "{\n  \"positions\": ["), "unexpected JSON document:\n%s", out.String())
}

func TestAnalyzeAll_JSONStream(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithSearchDepth(1).
		WithJSONOutput(true).
		WithJSONStream(true).
		WithOutput(&out).
		Build()

	fens := []string{testutil.KingsOnlyFEN, testutil.KingsOnlyFEN}
	written, failed, err := analyzeAll(fens, cfg, output.NewWriter(&out, cfg), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.Equal(t, 0, failed)

	assert.NotContains(t, out.String(), "positions", "stream output should not be wrapped in a document")
	dec := json.NewDecoder(&out)
	for want := 1; want <= 2; want++ {
		var ja output.JSONAnalysis
		require.NoError(t, dec.Decode(&ja), "object %d", want)
		assert.Equal(t, want, ja.Index)
	}
}

func TestAnalyzeAll_Empty(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).Build()

	written, failed, err := analyzeAll(nil, cfg, output.NewWriter(&out, cfg), nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, written)
	assert.Equal(t, 0, failed)
	assert.Zero(t, out.Len(), "output for no positions: %q", out.String())
}

func TestAnalyzeAll_StoppedBeforeStart(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithSearchDepth(1).WithOutput(&out).Build()

	stop := make(chan struct{})
	close(stop)
	fens := make([]string, 50)
	for i := range fens {
		fens[i] = testutil.KingsOnlyFEN
	}

	written, _, err := analyzeAll(fens, cfg, output.NewWriter(&out, cfg), stop)
	require.NoError(t, err)
	assert.LessOrEqual(t, written, len(fens))
}

func TestFindDuplicates(t *testing.T) {
	fens := []string{
		testutil.KingsOnlyFEN,
		testutil.MidgameFEN,
		"4k3/8/8/8/8/8/8/4K3 w - - 5 40",
		"garbage",
		"garbage",
		"4k3/8/8/8/8/8/8/4K3 b - - 0 1",
		testutil.MidgameFEN,
	}
	for _, exact := range []bool{false, true} {
		got := findDuplicates(fens, exact)
		want := map[int]int{3: 1, 7: 2}
		assert.Equal(t, want, got, "exact=%v", exact)
	}
}

func TestAnalyzeAll_SuppressesDuplicates(t *testing.T) {
	var out, logs, dupOut bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithSearchDepth(1).
		WithWorkers(2).
		WithDuplicateSuppression(true, false).
		WithOutput(&out).
		WithLog(&logs).
		Build()
	cfg.Duplicate.DuplicateFile = &dupOut

	fens := []string{
		testutil.KingsOnlyFEN,
		testutil.MidgameFEN,
		"4k3/8/8/8/8/8/8/4K3 w - - 5 40",
		"4k3/8/8/8/8/8/8/4K3 b - - 0 1",
	}
	written, failed, err := analyzeAll(fens, cfg, output.NewWriter(&out, cfg), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, written)
	assert.Equal(t, 0, failed)

	got := out.String()
	for _, tag := range []string{`[Position "1"]`, `[Position "2"]`, `[Position "4"]`} {
		assert.Contains(t, got, tag)
	}
	assert.NotContains(t, got, `[Position "3"]`, "duplicate position was written")

	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 5 40 ; position 3 repeats position 1\n", dupOut.String())
	assert.Contains(t, logs.String(), "analyze: 1 duplicate position(s) skipped")
}
