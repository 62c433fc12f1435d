package service

import (
	"context"
	"fmt"

	"campusforum/internal/http-api/models"
	"campusforum/internal/http-api/repository"
)

type NotificationService interface {
	Notify(ctx context.Context, userID int64, title, content string) error
	NotifyAdmins(ctx context.Context, title, content string) error
	Broadcast(ctx context.Context, title, content string, userIDs []int64) (int, error)
	List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID int64) (bool, error)
	MarkAllAsRead(ctx context.Context, userID int64) error
}

type notificationService struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
}

func NewNotificationService(repo repository.NotificationRepository, userRepo repository.UserRepository) NotificationService {
	return &notificationService{repo: repo, userRepo: userRepo}
}

// Notify inserts a single unread notification.
func (s *notificationService) Notify(ctx context.Context, userID int64, title, content string) error {
	return s.repo.Create(ctx, &models.Notification{
		UserID:  userID,
		Title:   title,
		Content: content,
	})
}

// NotifyAdmins fans one notification out to every admin, one insert per admin.
// The loop is best-effort: a failure mid-loop leaves the earlier inserts
// committed, there is no transaction around the fan-out.
func (s *notificationService) NotifyAdmins(ctx context.Context, title, content string) error {
	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		if err := s.Notify(ctx, admin.ID, title, content); err != nil {
			return fmt.Errorf("notify admin %d: %w", admin.ID, err)
		}
	}
	return nil
}

// Broadcast sends a notification to the listed users, or to every registered
// user when the list is empty. Returns the number of notifications written.
func (s *notificationService) Broadcast(ctx context.Context, title, content string, userIDs []int64) (int, error) {
	if len(userIDs) == 0 {
		all, err := s.userRepo.GetAllIDs(ctx)
		if err != nil {
			return 0, err
		}
		userIDs = all
	}

	sent := 0
	for _, id := range userIDs {
		if err := s.Notify(ctx, id, title, content); err != nil {
			return sent, fmt.Errorf("notify user %d: %w", id, err)
		}
		sent++
	}
	return sent, nil
}

func (s *notificationService) List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

// MarkAsRead returns false when the notification does not exist or belongs to
// another user; the route layer turns that into a 404.
func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int64) (bool, error) {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
