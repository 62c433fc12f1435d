package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"campusforum/internal/http-api/dto"
	"campusforum/internal/http-api/models"
	"campusforum/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrPostNotVisible   = errors.New("no permission to view this post")
	ErrCategoryNotFound = errors.New("category not found")
)

// excerptLimit caps the stored plain-text preview of a post.
const excerptLimit = 300

type PostService interface {
	Create(ctx context.Context, authorID int64, req dto.CreatePostRequest) (*models.Post, error)
	Get(postID, viewerID int64) (*dto.PostResponse, error)
	List(q repository.ListPostsQuery) (*dto.PaginatedPostResponse, error)
	ListPending() ([]dto.PostListItem, error)
	Approve(ctx context.Context, postID int64) (*models.Post, error)
	Reject(ctx context.Context, postID int64, reason string) (*models.Post, error)
	Update(postID int64, req dto.UpdatePostRequest) (*models.Post, error)
	Delete(postID int64) error
}

type postService struct {
	postRepo      repository.PostRepository
	categoryRepo  repository.CategoryRepository
	userRepo      repository.UserRepository
	notifications NotificationService
	logger        *slog.Logger
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	notifications NotificationService,
	logger *slog.Logger,
) PostService {
	return &postService{
		postRepo:      postRepo,
		categoryRepo:  categoryRepo,
		userRepo:      userRepo,
		notifications: notifications,
		logger:        logger,
	}
}

// makeExcerpt derives the bounded preview stored alongside the content.
// Counted in runes so multi-byte text is not cut mid-character.
func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLimit {
		return content
	}
	return string(runes[:excerptLimit]) + "..."
}

// Create inserts the post in pending state and fans a review notification out
// to every admin. The fan-out is best-effort: the post is already committed,
// so a failed notification is logged rather than failing the request.
func (s *postService) Create(ctx context.Context, authorID int64, req dto.CreatePostRequest) (*models.Post, error) {
	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	post := &models.Post{
		Title:           req.Title,
		ContentMarkdown: req.ContentMarkdown,
		ContentExcerpt:  makeExcerpt(req.ContentMarkdown),
		AuthorID:        authorID,
		CategoryID:      req.CategoryID,
		Status:          models.PostStatusPending,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	// Reload with author and category data
	post, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return nil, err
	}

	err = s.notifications.NotifyAdmins(ctx,
		"New post awaiting review",
		fmt.Sprintf("User %s submitted a new post %q for review.", post.Author.Username, post.Title),
	)
	if err != nil {
		s.logger.Warn("admin review fan-out failed", "post_id", post.ID, "error", err)
	}

	return post, nil
}

// Get returns the post detail and counts the view. Pending and rejected posts
// are visible only to their author and to admins; viewerID is zero for
// anonymous callers.
func (s *postService) Get(postID, viewerID int64) (*dto.PostResponse, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if post.Status != models.PostStatusApproved {
		if viewerID == 0 {
			return nil, ErrPostNotVisible
		}
		viewer, err := s.userRepo.FindByID(viewerID)
		if err != nil {
			return nil, ErrPostNotVisible
		}
		if viewer.ID != post.AuthorID && !viewer.IsAdmin {
			return nil, ErrPostNotVisible
		}
	}

	if err := s.postRepo.IncrementViews(post.ID); err != nil {
		return nil, err
	}
	post.Views++

	return dto.FromModelToPostResponse(post), nil
}

func (s *postService) List(q repository.ListPostsQuery) (*dto.PaginatedPostResponse, error) {
	posts, total, err := s.postRepo.List(q)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PostListItem, 0, len(posts))
	for i := range posts {
		items = append(items, *dto.FromModelToPostListItem(&posts[i]))
	}

	return &dto.PaginatedPostResponse{
		Items:    items,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// ListPending returns the admin review queue.
func (s *postService) ListPending() ([]dto.PostListItem, error) {
	posts, err := s.postRepo.ListByStatus(models.PostStatusPending)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PostListItem, 0, len(posts))
	for i := range posts {
		items = append(items, *dto.FromModelToPostListItem(&posts[i]))
	}
	return items, nil
}

// Approve marks the post approved and notifies the author. Re-approving an
// already approved post re-commits the same state and sends a duplicate
// notification; that is accepted, moderation is last-write-wins.
func (s *postService) Approve(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post.Status = models.PostStatusApproved
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	err = s.notifications.Notify(ctx, post.AuthorID,
		"Post approved",
		fmt.Sprintf("Your post %q has been approved.", post.Title),
	)
	if err != nil {
		s.logger.Warn("approval notification failed", "post_id", post.ID, "error", err)
	}

	return post, nil
}

// Reject marks the post rejected and notifies the author, including the
// free-text reason when one was given.
func (s *postService) Reject(ctx context.Context, postID int64, reason string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post.Status = models.PostStatusRejected
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	content := fmt.Sprintf("Your post %q was rejected.", post.Title)
	if reason != "" {
		content += " Reason: " + reason
	}
	if err := s.notifications.Notify(ctx, post.AuthorID, "Post rejected", content); err != nil {
		s.logger.Warn("rejection notification failed", "post_id", post.ID, "error", err)
	}

	return post, nil
}

// Update is the admin edit; the excerpt is re-derived from the new content.
func (s *postService) Update(postID int64, req dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	post.Title = req.Title
	post.ContentMarkdown = req.ContentMarkdown
	post.ContentExcerpt = makeExcerpt(req.ContentMarkdown)
	post.CategoryID = req.CategoryID

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(postID)
}

func (s *postService) Delete(postID int64) error {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return s.postRepo.Delete(postID)
}
