package handler

import (
	"context"
	"os"
	"testing"

	"campusforum/internal/http-api/dto"
	"campusforum/internal/http-api/models"
	"campusforum/internal/http-api/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// withUser fakes the session middleware for handler tests.
func withUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// Service mocks shared by the handler tests.

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) ResolveSession(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) GetUser(userID int64) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(userID int64, req dto.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Create(ctx context.Context, authorID int64, req dto.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Get(postID, viewerID int64) (*dto.PostResponse, error) {
	args := m.Called(postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostResponse), args.Error(1)
}

func (m *MockPostService) List(q repository.ListPostsQuery) (*dto.PaginatedPostResponse, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedPostResponse), args.Error(1)
}

func (m *MockPostService) ListPending() ([]dto.PostListItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PostListItem), args.Error(1)
}

func (m *MockPostService) Approve(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Reject(ctx context.Context, postID int64, reason string) (*models.Post, error) {
	args := m.Called(ctx, postID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Update(postID int64, req dto.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Delete(postID int64) error {
	args := m.Called(postID)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(postID, authorID int64, content string) (*dto.CommentResponse, error) {
	args := m.Called(postID, authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Delete(commentID, actorID int64) error {
	args := m.Called(commentID, actorID)
	return args.Error(0)
}

func (m *MockCommentService) ListByPost(postID int64) ([]dto.CommentResponse, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) LikePost(userID, postID int64) (int64, error) {
	args := m.Called(userID, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeService) UnlikePost(userID, postID int64) (int64, error) {
	args := m.Called(userID, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeService) LikeComment(userID, commentID int64) (int64, error) {
	args := m.Called(userID, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeService) UnlikeComment(userID, commentID int64) (int64, error) {
	args := m.Called(userID, commentID)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID int64, title, content string) error {
	args := m.Called(ctx, userID, title, content)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyAdmins(ctx context.Context, title, content string) error {
	args := m.Called(ctx, title, content)
	return args.Error(0)
}

func (m *MockNotificationService) Broadcast(ctx context.Context, title, content string, userIDs []int64) (int, error) {
	args := m.Called(ctx, title, content, userIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int64) (bool, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
