package domain

import (
	"context"
	"time"
)

// Post is representing the Post data struct.
// Posts are immutable in this backend: no create/update/delete endpoints,
// only reads. Mutation happens out of band (seed data).
type Post struct {
	ID        int64     // Unique identifier for the post
	Title     string    // Post title
	Body      string    // Post body content
	User      User      // Author information
	CreatedAt time.Time // Creation timestamp
}

// PostDetail is a post merged with its comment views, as served by
// GET /posts/:id. Comments come back flat, newest first; the client
// rebuilds the tree from ParentID.
type PostDetail struct {
	Post     Post
	Comments []Comment
}

// PostDBRepository defines the database-only contract for posts.
type PostDBRepository interface {
	// Fetch retrieves all posts, newest first.
	Fetch(ctx context.Context) ([]Post, error)

	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// FetchIDs retrieves post IDs after the given cursor, used to
	// seed the bloom filter at startup.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// PostRepository is the coordinating contract (cache + database).
type PostRepository interface {
	Fetch(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// PostCache defines the cache contract for posts. Posts never change,
// so plain TTL entries are safe: no invalidation path is needed.
type PostCache interface {
	GetPost(ctx context.Context, id int64) (Post, error)
	SetPost(ctx context.Context, p *Post) error

	// Home is the GET /posts listing.
	GetHome(ctx context.Context) ([]Post, error)
	SetHome(ctx context.Context, posts []Post) error
}

// PostUsecase defines the business logic contract for the read side.
type PostUsecase interface {
	// Fetch lists all posts for the home page.
	Fetch(ctx context.Context) ([]Post, error)

	// GetWithComments returns a post with its comments, where every
	// comment carries its like count and whether viewerID liked it.
	GetWithComments(ctx context.Context, postID, viewerID int64) (PostDetail, error)

	// InitBloomFilter loads all post IDs into the bloom filter.
	InitBloomFilter(ctx context.Context) error
}
