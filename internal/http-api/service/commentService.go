package service

import (
	"errors"

	"campusforum/internal/http-api/dto"
	"campusforum/internal/http-api/models"
	"campusforum/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCommentForbidden = errors.New("no permission to delete this comment")
)

type CommentService interface {
	Create(postID, authorID int64, content string) (*dto.CommentResponse, error)
	Delete(commentID, actorID int64) error
	ListByPost(postID int64) ([]dto.CommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Create adds a comment to an existing post.
func (s *commentService) Create(postID, authorID int64, content string) (*dto.CommentResponse, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Reload with author data
	comment, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// Delete removes a comment, allowed only for its author or an admin.
func (s *commentService) Delete(commentID, actorID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return ErrCommentForbidden
	}
	if actor.ID != comment.AuthorID && !actor.IsAdmin {
		return ErrCommentForbidden
	}

	return s.commentRepo.Delete(commentID)
}

// ListByPost returns all comments on a post, newest first.
func (s *commentService) ListByPost(postID int64) ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return responses, nil
}
