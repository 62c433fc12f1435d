package service

import (
	"errors"

	"campusforum/internal/http-api/models"
	"campusforum/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyLiked = errors.New("already liked")
	ErrNotLiked     = errors.New("not liked")
)

// LikeService implements the like/unlike toggles for posts and comments.
// Counts are recomputed from the rows on every call; the composite unique
// index both backs the at-most-one-like invariant and keeps the count query
// indexed.
type LikeService interface {
	LikePost(userID, postID int64) (int64, error)
	UnlikePost(userID, postID int64) (int64, error)
	LikeComment(userID, commentID int64) (int64, error)
	UnlikeComment(userID, commentID int64) (int64, error)
}

type likeService struct {
	postLikes    repository.PostLikeRepository
	commentLikes repository.CommentLikeRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
}

func NewLikeService(
	postLikes repository.PostLikeRepository,
	commentLikes repository.CommentLikeRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) LikeService {
	return &likeService{
		postLikes:    postLikes,
		commentLikes: commentLikes,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
	}
}

func (s *likeService) LikePost(userID, postID int64) (int64, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPostNotFound
		}
		return 0, err
	}

	liked, err := s.postLikes.Exists(userID, postID)
	if err != nil {
		return 0, err
	}
	if liked {
		return 0, ErrAlreadyLiked
	}

	err = s.postLikes.Create(&models.PostLike{UserID: userID, PostID: postID})
	if err != nil {
		// Two concurrent likes can both pass the existence check; the unique
		// index decides the race.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return 0, ErrAlreadyLiked
		}
		return 0, err
	}

	return s.postLikes.CountByPost(postID)
}

func (s *likeService) UnlikePost(userID, postID int64) (int64, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPostNotFound
		}
		return 0, err
	}

	removed, err := s.postLikes.Delete(userID, postID)
	if err != nil {
		return 0, err
	}
	if !removed {
		return 0, ErrNotLiked
	}

	return s.postLikes.CountByPost(postID)
}

func (s *likeService) LikeComment(userID, commentID int64) (int64, error) {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCommentNotFound
		}
		return 0, err
	}

	liked, err := s.commentLikes.Exists(userID, commentID)
	if err != nil {
		return 0, err
	}
	if liked {
		return 0, ErrAlreadyLiked
	}

	err = s.commentLikes.Create(&models.CommentLike{UserID: userID, CommentID: commentID})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return 0, ErrAlreadyLiked
		}
		return 0, err
	}

	return s.commentLikes.CountByComment(commentID)
}

func (s *likeService) UnlikeComment(userID, commentID int64) (int64, error) {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCommentNotFound
		}
		return 0, err
	}

	removed, err := s.commentLikes.Delete(userID, commentID)
	if err != nil {
		return 0, err
	}
	if !removed {
		return 0, ErrNotLiked
	}

	return s.commentLikes.CountByComment(commentID)
}
