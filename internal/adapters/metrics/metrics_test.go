package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/metrics"
)

func TestCollector_Counters(t *testing.T) {
	c := metrics.New()

	c.GitFetch("cloned")
	c.GitFetch("updated")
	c.GitFetch("updated")
	c.GitCheckout(true)
	c.ManifestLoad("git")
	c.Conflict("source")

	count, err := testutil.GatherAndCount(c.Registry(), "cairn_git_fetches_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per result label")

	total, err := testutil.GatherAndCount(c.Registry())
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestCollector_WriteTo(t *testing.T) {
	c := metrics.New()
	c.ManifestLoad("path")

	path := filepath.Join(t.TempDir(), "nested", "cairn.prom")
	require.NoError(t, c.WriteTo(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `cairn_manifest_loads_total{kind="path"} 1`)
}
