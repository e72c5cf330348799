package fixtures

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apiError "github.com/next-trace/scg-result/error"
	"github.com/next-trace/scg-result/result"
)

// CodeNotFound is the code of the Error returned for unknown article ids.
const CodeNotFound = "NotFound"

// MemoryRepo is an ArticleRepo backed by a map.
type MemoryRepo struct {
	mu       sync.RWMutex
	articles map[uuid.UUID]Article
}

var _ ArticleRepo = (*MemoryRepo)(nil)

// NewMemoryRepo returns a repository holding the given articles.
func NewMemoryRepo(articles ...Article) *MemoryRepo {
	r := &MemoryRepo{articles: make(map[uuid.UUID]Article, len(articles))}
	for _, a := range articles {
		r.articles[a.ID] = a
	}

	return r
}

// Add stores a new article under a fresh id and returns it.
func (r *MemoryRepo) Add(title, description string) Article {
	a := Article{ID: uuid.New(), Title: title, Description: description}

	r.mu.Lock()
	r.articles[a.ID] = a
	r.mu.Unlock()

	return a
}

func (r *MemoryRepo) GetArticleByID(ctx context.Context, id uuid.UUID) result.Of[Article] {
	if err := ctx.Err(); err != nil {
		return result.FaultOf[Article](err)
	}

	r.mu.RLock()
	a, ok := r.articles[id]
	r.mu.RUnlock()

	if !ok {
		return result.ErrorOf[Article](notFound(id))
	}

	return result.FromValue(a)
}

func (r *MemoryRepo) DeleteArticle(ctx context.Context, id uuid.UUID) result.Result {
	if err := ctx.Err(); err != nil {
		return result.FromFault(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return result.FromError(notFound(id))
	}

	delete(r.articles, id)

	return result.Success()
}

func notFound(id uuid.UUID) *apiError.Error {
	return apiError.New(CodeNotFound, "The article "+id.String()+" does not exist.")
}
