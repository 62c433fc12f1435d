package repository

import (
	"context"
	"fmt"
	"strings"

	"campusforum/internal/http-api/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	FindByID(id int64) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAdmins(ctx context.Context) ([]models.User, error)
	GetAllIDs(ctx context.Context) ([]int64, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if conflict := userConflict(err); conflict != nil {
			return fmt.Errorf("create user: %w", conflict)
		}
		return err
	}
	return nil
}

func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if conflict := userConflict(err); conflict != nil {
			return fmt.Errorf("update user: %w", conflict)
		}
		return err
	}
	return nil
}

// userConflict picks the sentinel for a unique violation on the users table,
// using the constraint name to tell the email index from the username one.
func userConflict(err error) error {
	name, ok := uniqueConstraint(err)
	if !ok {
		return nil
	}
	if strings.Contains(name, "email") {
		return ErrDuplicateEmail
	}
	return ErrDuplicateKey
}

func (r *userRepository) FindByID(id int64) (*models.User, error) {
	var user models.User
	// return nil on error so GORM never hands back a zero-value user
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAdmins returns every user with the admin flag set, for notification fan-out.
func (r *userRepository) FindAdmins(ctx context.Context) ([]models.User, error) {
	var admins []models.User
	err := r.db.WithContext(ctx).Where("is_admin = ?", true).Find(&admins).Error
	return admins, err
}

func (r *userRepository) GetAllIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Pluck("id", &ids).Error
	return ids, err
}
