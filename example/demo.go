package main

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	apiError "github.com/next-trace/scg-result/error"
	"github.com/next-trace/scg-result/internal/fixtures"
	"github.com/next-trace/scg-result/result"
)

type publisher struct{}

// Publish fails with a stack-carrying fault so its code names this method.
func (publisher) Publish(a fixtures.Article) error {
	return errors.Wrapf(errors.New("queue unavailable"), "publish %s", a.ID)
}

func run(ctx context.Context, log *slog.Logger) error {
	repo := fixtures.NewMemoryRepo()
	article := repo.Add("Test Article", "Test description.")

	// Success: read the value after checking.
	if res := repo.GetArticleByID(ctx, article.ID); res.IsSuccess() {
		log.Info("found article", "title", res.Value().Title)
	}

	// Failure with a single Error, consumed through Match.
	msg := result.Match(repo.GetArticleByID(ctx, uuid.New()),
		func(a fixtures.Article) string { return a.Title },
		func(errs []*apiError.Error) string { return errs[0].Code() + ": " + errs[0].Description() },
	)
	log.Warn("lookup", "outcome", msg)

	// Failure from a fault chain.
	result.Check(publisher{}.Publish(article)).Switch(
		func() { log.Info("published") },
		func(errs []*apiError.Error) {
			for _, e := range errs {
				log.Error("publish failed", "error", e)
			}
		},
	)

	deleted := repo.DeleteArticle(ctx, article.ID)
	again := repo.DeleteArticle(ctx, article.ID)
	log.Info("delete", "first", deleted, "second", again)

	n, err := result.MatchAsync(ctx, repo.GetArticleByID(ctx, article.ID),
		func(context.Context, fixtures.Article) (int, error) { return 1, nil },
		func(_ context.Context, errs []*apiError.Error) (int, error) {
			return 0, errors.Wrap(errs[0], "lookup after delete")
		},
	)
	log.Info("async match", "found", n, "err", err)

	// Results leave through plain Go errors at the edge.
	return deleted.Err()
}
