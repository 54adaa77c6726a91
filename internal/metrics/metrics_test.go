package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtile/tiling"
)

func TestNewRecorder(t *testing.T) {
	r := NewRecorder()
	require.NotNil(t, r.Registry())
	require.NotNil(t, r.ChecksTotal)
	require.NotNil(t, r.AugmentationsTotal)

	// two recorders do not collide: registries are private
	require.NotPanics(t, func() { NewRecorder() })
}

func TestObserveCheck(t *testing.T) {
	r := NewRecorder()
	r.ObserveCheck(&tiling.Result{Tileable: true, Black: 2, Red: 2}, 3*time.Millisecond)
	r.ObserveCheck(&tiling.Result{Tileable: false, Black: 1}, time.Millisecond)
	r.ObserveCheck(&tiling.Result{Tileable: false}, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.ChecksTotal.WithLabelValues(ResultTileable)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.ChecksTotal.WithLabelValues(ResultNotTileable)))
	assert.Equal(t, 1, testutil.CollectAndCount(r.CheckDuration))
}

func TestRecorderAsObserver(t *testing.T) {
	r := NewRecorder()
	checker := tiling.NewChecker(tiling.WithObserver(r))

	require.True(t, checker.CanTile("....\n...."))
	require.False(t, checker.CanTile("..."))

	assert.Equal(t, 4.0, testutil.ToFloat64(r.AugmentationsTotal), "one per black cell of the 2×4 plan")
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ChecksTotal.WithLabelValues(ResultTileable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ChecksTotal.WithLabelValues(ResultNotTileable)))

	expected := `
# HELP lvtile_augmentations_total Total number of augmenting paths pushed by the flow engine
# TYPE lvtile_augmentations_total counter
lvtile_augmentations_total 4
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "lvtile_augmentations_total"))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveAugment()
	r.ObserveCheck(&tiling.Result{Tileable: true}, time.Millisecond)

	path := filepath.Join(t.TempDir(), "lvtile.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "lvtile_augmentations_total 1")
	assert.Contains(t, out, `lvtile_checks_total{result="tileable"} 1`)
	assert.Contains(t, out, "lvtile_check_duration_seconds_count 1")
}
