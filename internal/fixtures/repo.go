// Package fixtures holds the producer side used by tests and the example: an
// article repository whose methods return results instead of errors.
package fixtures

//go:generate mockgen -source=repo.go -destination=repo_mock.go -package=fixtures

import (
	"context"

	"github.com/google/uuid"

	"github.com/next-trace/scg-result/result"
)

// Article is the payload returned by ArticleRepo.
type Article struct {
	ID          uuid.UUID
	Title       string
	Description string
}

// ArticleRepo reads and removes articles.
type ArticleRepo interface {
	GetArticleByID(ctx context.Context, id uuid.UUID) result.Of[Article]
	DeleteArticle(ctx context.Context, id uuid.UUID) result.Result
}
