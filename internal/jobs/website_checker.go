package jobs

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"suratlocal/internal/db"
	"suratlocal/internal/models"
	"suratlocal/internal/validation"
)

// WebsiteChecker performs background reachability checks on listing websites.
type WebsiteChecker struct {
	db       *db.DB
	interval time.Duration
	maxAge   time.Duration
	client   *http.Client
}

// NewWebsiteChecker creates a new website checker.
func NewWebsiteChecker(database *db.DB, interval, maxAge time.Duration) *WebsiteChecker {
	return &WebsiteChecker{
		db:       database,
		interval: interval,
		maxAge:   maxAge,
		client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Start begins the background website check loop.
func (w *WebsiteChecker) Start(ctx context.Context) {
	log.Printf("Website checker started (interval: %v, maxAge: %v)", w.interval, w.maxAge)

	// Run immediately on start
	w.checkAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Website checker stopped")
			return
		case <-ticker.C:
			w.checkAll(ctx)
		}
	}
}

// checkAll checks all listings whose website is due for a check.
func (w *WebsiteChecker) checkAll(ctx context.Context) {
	listings, err := w.db.GetListingsNeedingWebsiteCheck(ctx, w.maxAge, 50)
	if err != nil {
		log.Printf("Website checker: failed to get listings: %v", err)
		return
	}

	if len(listings) == 0 {
		return
	}

	log.Printf("Website checker: checking %d listings", len(listings))

	for _, listing := range listings {
		select {
		case <-ctx.Done():
			return
		default:
		}

		status := w.checkURL(ctx, listing.Website)
		if err := w.db.UpdateListingWebsiteStatus(ctx, listing.ID, status); err != nil {
			log.Printf("Website checker: failed to update listing %s: %v", listing.Slug, err)
			continue
		}

		// Delay between checks to avoid overwhelming external servers
		time.Sleep(1 * time.Second)
	}
}

// checkURL performs a HEAD request to check if a website responds.
// Validates URLs before making requests to prevent SSRF attacks.
func (w *WebsiteChecker) checkURL(ctx context.Context, url string) string {
	if valid, _ := validation.ValidateURLForWebsiteCheck(url); !valid {
		return models.WebsiteUnreachable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return models.WebsiteUnreachable
	}

	req.Header.Set("User-Agent", "SuratLocal-WebsiteChecker/1.0")

	resp, err := w.client.Do(req)
	if err != nil {
		return models.WebsiteUnknown
	}
	defer resp.Body.Close()

	// Any HTTP response means the site is reachable
	return models.WebsiteReachable
}
