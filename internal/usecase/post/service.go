package post

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oakheim/blog-comments/domain"
)

const bloomInitBatchSize = 1000

type Service struct {
	postRepo    domain.PostRepository
	commentRepo domain.CommentRepository
	likeRepo    domain.LikeRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(p domain.PostRepository, c domain.CommentRepository, l domain.LikeRepository, u domain.UserRepository, b domain.BloomRepository) *Service {
	return &Service{
		postRepo:    p,
		commentRepo: c,
		likeRepo:    l,
		userRepo:    u,
		bloomRepo:   b,
	}
}

func (s *Service) mustExists(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", id)
		return domain.ErrNotFound
	}

	return nil
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Post, error) {
	return s.postRepo.Fetch(ctx)
}

// GetWithComments 聚合文章详情: 评论列表 + 每条评论的点赞数和当前用户是否已点赞
func (s *Service) GetWithComments(ctx context.Context, postID, viewerID int64) (domain.PostDetail, error) {
	if err := s.mustExists(ctx, postID); err != nil {
		return domain.PostDetail{}, domain.ErrNotFound
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return domain.PostDetail{}, err
	}

	comments, err := s.commentRepo.FetchByPost(ctx, postID)
	if err != nil {
		return domain.PostDetail{}, err
	}

	comments, err = s.fillAuthorDetails(ctx, comments)
	if err != nil {
		return domain.PostDetail{}, err
	}

	if err := s.fillLikeState(ctx, comments, viewerID); err != nil {
		return domain.PostDetail{}, err
	}

	return domain.PostDetail{
		Post:     post,
		Comments: comments,
	}, nil
}

// fillAuthorDetails 批量填充评论作者信息
func (s *Service) fillAuthorDetails(ctx context.Context, comments []domain.Comment) ([]domain.Comment, error) {
	if len(comments) == 0 {
		return comments, nil
	}

	// 收集所有不重复的UserID
	userIDs := make([]int64, 0, len(comments))
	existMap := make(map[int64]bool)
	for _, item := range comments {
		if !existMap[item.UserID] {
			userIDs = append(userIDs, item.UserID)
			existMap[item.UserID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[int64]domain.User)
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range comments {
		if u, ok := userMap[comments[i].UserID]; ok {
			comments[i].User = &u
		}
	}

	return comments, nil
}

// fillLikeState merges the aggregated like counts and the viewer's own
// like set into the comment list, keyed by comment ID.
func (s *Service) fillLikeState(ctx context.Context, comments []domain.Comment, viewerID int64) error {
	if len(comments) == 0 {
		return nil
	}

	commentIDs := make([]int64, len(comments))
	for i := range comments {
		commentIDs[i] = comments[i].ID
	}

	counts, err := s.likeRepo.CountByComments(ctx, commentIDs)
	if err != nil {
		return err
	}

	likedIDs, err := s.likeRepo.LikedCommentIDs(ctx, viewerID, commentIDs)
	if err != nil {
		return err
	}
	likedMap := make(map[int64]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedMap[id] = true
	}

	for i := range comments {
		comments[i].LikeCount = counts[comments[i].ID]
		comments[i].LikedByMe = likedMap[comments[i].ID]
	}

	return nil
}

// InitBloomFilter 启动时把全部文章ID灌入布隆过滤器
func (s *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, bloomInitBatchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}

		cursor = ids[len(ids)-1]
		if len(ids) < bloomInitBatchSize {
			return nil
		}
	}
}
