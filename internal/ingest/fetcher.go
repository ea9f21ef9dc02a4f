package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

// Fetcher pulls articles from configured RSS feeds into storage. Articles are
// deduped on title; content is never updated after ingest.
type Fetcher struct {
	repo   repositories.Repository
	parser *gofeed.Parser
	feeds  []string
	logger utils.Logger
}

func NewFetcher(repo repositories.Repository, feeds []string, logger utils.Logger) *Fetcher {
	return &Fetcher{
		repo:   repo,
		parser: gofeed.NewParser(),
		feeds:  feeds,
		logger: logger,
	}
}

// FetchArticles walks every configured feed once. Each feed is ingested in
// its own transaction; a broken feed is logged and skipped without aborting
// the run.
func (f *Fetcher) FetchArticles(ctx context.Context) error {
	for _, feedURL := range f.feeds {
		if err := f.fetchFeed(ctx, feedURL); err != nil {
			f.logger.Warn("skipping feed", "feed", feedURL, "error", err)
		}
	}
	return ctx.Err()
}

// Run fetches on startup and then on every tick until the context ends.
func (f *Fetcher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	_ = f.FetchArticles(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = f.FetchArticles(ctx)
		}
	}
}

func (f *Fetcher) fetchFeed(ctx context.Context, feedURL string) error {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return fmt.Errorf("failed to parse feed: %w", err)
	}

	created := 0
	// One transaction per feed: the batch lands whole or not at all, and a
	// failed statement cannot leave a feed half ingested.
	err = f.repo.WithTx(ctx, func(repo repositories.Repository) error {
		for _, entry := range feed.Items {
			if entry.Title == "" {
				continue
			}

			existing, err := repo.Article().GetByTitle(ctx, entry.Title)
			if err != nil {
				return fmt.Errorf("article lookup failed for %q: %w", entry.Title, err)
			}
			if existing != nil {
				continue
			}

			published := time.Now().UTC()
			if entry.PublishedParsed != nil {
				published = *entry.PublishedParsed
			} else if entry.UpdatedParsed != nil {
				published = *entry.UpdatedParsed
			}

			article := &models.Article{
				Title:      entry.Title,
				Content:    entry.Description,
				Source:     entry.Link,
				DatePosted: published,
			}
			if err := repo.Article().Create(ctx, article); err != nil {
				return fmt.Errorf("failed to store article %q: %w", entry.Title, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return err
	}

	f.logger.Info("feed processed", "feed", feedURL, "entries", len(feed.Items), "created", created)
	return nil
}
