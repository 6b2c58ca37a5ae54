package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"suratlocal/internal/db"
)

// Outcomes for listing page views.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

var (
	listingViewDesc = prometheus.NewDesc(
		"suratlocal_listing_views_total",
		"Total listing page view count by outcome",
		[]string{"slug", "outcome"},
		nil,
	)
)

// ListingViewCollector is a custom Prometheus collector that reads listing
// view counts from the database on each scrape.
type ListingViewCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *ListingViewCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- listingViewDesc
}

// Collect queries the database for all listing views and emits them as counters.
func (c *ListingViewCollector) Collect(ch chan<- prometheus.Metric) {
	views, err := c.db.GetAllListingViews(context.Background())
	if err != nil {
		slog.Error("failed to collect listing view metrics", "error", err)
		return
	}
	for _, v := range views {
		ch <- prometheus.MustNewConstMetric(
			listingViewDesc,
			prometheus.CounterValue,
			float64(v.Count),
			v.Slug,
			v.Outcome,
		)
	}
}

// Recorder provides async listing view recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&ListingViewCollector{db: database})
	})
}

// RecordListingView asynchronously records a listing page view outcome.
func RecordListingView(slug, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementListingView(context.Background(), slug, outcome); err != nil {
			slog.Error("failed to record listing view", "slug", slug, "outcome", outcome, "error", err)
		}
	}()
}
