package countries

import (
	"context"
	"fmt"

	"github.com/osahenru/atlas/internal/logger"
	"github.com/osahenru/atlas/internal/render"
	"github.com/osahenru/atlas/models"
)

// refreshOrchestrator runs the full cycle synchronously within the triggering
// request: fetch both feeds, merge, upsert, record status, regenerate the
// summary image. Concurrent invocations are not serialized; country records
// are last-writer-wins at record granularity.
type refreshOrchestrator struct {
	feeds      FeedClient
	merger     *Merger
	repo       Repository
	statusRepo StatusRepository
	renderer   SummaryRenderer
	images     ImageStore
	logger     logger.Logger
	topN       int
}

// NewRefreshOrchestrator wires a Refresher for one deployment.
func NewRefreshOrchestrator(
	feedClient FeedClient,
	merger *Merger,
	repo Repository,
	statusRepo StatusRepository,
	renderer SummaryRenderer,
	images ImageStore,
	log logger.Logger,
	topN int,
) Refresher {
	return &refreshOrchestrator{
		feeds:      feedClient,
		merger:     merger,
		repo:       repo,
		statusRepo: statusRepo,
		renderer:   renderer,
		images:     images,
		logger:     log,
		topN:       topN,
	}
}

// Refresh runs one cycle and returns the number of countries processed.
// Either upstream fetch failing aborts the cycle before any write; the status
// row is only touched after every upsert has completed.
func (o *refreshOrchestrator) Refresh(ctx context.Context) (int, error) {
	records, err := o.feeds.FetchCountries(ctx)
	if err != nil {
		o.logger.Error(err, logger.Fields{"step": "fetch_countries"})
		return 0, fmt.Errorf("%w: %s", models.ErrExternalSource, err)
	}

	rates, err := o.feeds.FetchRates(ctx)
	if err != nil {
		o.logger.Error(err, logger.Fields{"step": "fetch_rates"})
		return 0, fmt.Errorf("%w: %s", models.ErrExternalSource, err)
	}

	countries := o.merger.Merge(records, rates)

	if err := o.repo.UpsertAll(ctx, countries); err != nil {
		return 0, fmt.Errorf("upsert countries: %w", err)
	}

	total, err := o.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count countries: %w", err)
	}

	status, err := o.statusRepo.RecordRefresh(ctx, total)
	if err != nil {
		return 0, fmt.Errorf("record refresh status: %w", err)
	}

	if err := o.renderSummary(ctx, status); err != nil {
		return 0, err
	}

	o.logger.Info("refresh cycle complete", logger.Fields{
		"processed": len(countries),
		"total":     total,
	})
	return len(countries), nil
}

func (o *refreshOrchestrator) renderSummary(ctx context.Context, status *models.Status) error {
	top, err := o.repo.TopByGDP(ctx, o.topN)
	if err != nil {
		return fmt.Errorf("rank countries: %w", err)
	}

	summary := render.Summary{
		HasStatus:      true,
		TotalCountries: status.TotalCountries,
		LastRefreshed:  status.LastRefreshed,
		Top:            make([]render.TopCountry, len(top)),
	}
	for i := range top {
		summary.Top[i] = render.TopCountry{
			Name:         top[i].Name,
			EstimatedGDP: top[i].EstimatedGDP,
		}
	}

	img, err := o.renderer.Render(summary)
	if err != nil {
		return fmt.Errorf("render summary image: %w", err)
	}
	if err := o.images.Put(ctx, img); err != nil {
		return fmt.Errorf("store summary image: %w", err)
	}
	return nil
}
