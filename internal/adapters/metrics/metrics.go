// Package metrics collects resolver counters with the Prometheus client.
package metrics

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "cairn"

// Collector implements ports.Metrics on a private Prometheus registry.
type Collector struct {
	registry      *prometheus.Registry
	gitFetches    *prometheus.CounterVec
	gitCheckouts  *prometheus.CounterVec
	manifestLoads *prometheus.CounterVec
	conflicts     *prometheus.CounterVec
}

// New creates a Collector with all counters registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		gitFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "git_fetches_total",
			Help:      "Git repository fetches by result.",
		}, []string{"result"}),
		gitCheckouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "git_checkouts_total",
			Help:      "Git checkouts by whether an existing checkout was reused.",
		}, []string{"cached"}),
		manifestLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "manifest_loads_total",
			Help:      "Manifests loaded by source kind.",
		}, []string{"kind"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolution_conflicts_total",
			Help:      "Resolution failures by conflict kind.",
		}, []string{"kind"}),
	}
	c.registry.MustRegister(c.gitFetches, c.gitCheckouts, c.manifestLoads, c.conflicts)
	return c
}

// GitFetch counts a repository fetch.
func (c *Collector) GitFetch(result string) {
	c.gitFetches.WithLabelValues(result).Inc()
}

// GitCheckout counts a checkout.
func (c *Collector) GitCheckout(cached bool) {
	c.gitCheckouts.WithLabelValues(strconv.FormatBool(cached)).Inc()
}

// ManifestLoad counts a manifest load.
func (c *Collector) ManifestLoad(kind string) {
	c.manifestLoads.WithLabelValues(kind).Inc()
}

// Conflict counts a resolution failure.
func (c *Collector) Conflict(kind string) {
	c.conflicts.WithLabelValues(kind).Inc()
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTo writes all metrics to path in the text exposition format.
func (c *Collector) WriteTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create metrics directory"), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
	}
	return nil
}
