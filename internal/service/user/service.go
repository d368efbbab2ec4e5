package user

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abghifareihand/overtime-connect-backend/internal/domain/user"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/storage"
)

type UserServiceImpl struct {
	user.UserRepository
	fileStorage storage.FileStorage
}

func NewUserService(userRepository user.UserRepository, fileStorage storage.FileStorage) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		fileStorage:    fileStorage,
	}
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	found, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(ctx, found), nil
}

// UpdateProfile implements user.UserService. Only the fields present in
// the request are changed.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Fullname != nil {
		current.Fullname = *req.Fullname
	}
	if req.Username != nil {
		current.Username = *req.Username
	}
	if req.Phone != nil {
		current.Phone = req.Phone
	}
	if req.WorkingDays != nil {
		current.WorkingDays = req.WorkingDays
	}

	updated, err := s.UserRepository.Update(ctx, current)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(ctx, updated), nil
}

// UpdatePhoto implements user.UserService. The previous photo file is
// removed after the new one is stored.
func (s *UserServiceImpl) UpdatePhoto(ctx context.Context, userID string, photo io.Reader, filename, contentType string) (user.UserResponse, error) {
	current, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	path := fmt.Sprintf("photos/%s%s", uuid.NewString(), ext)

	stored, err := s.fileStorage.Upload(ctx, photo, path, contentType)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to store photo: %w", err)
	}

	oldPhoto := current.Photo
	current.Photo = &stored

	updated, err := s.UserRepository.Update(ctx, current)
	if err != nil {
		if delErr := s.fileStorage.Delete(ctx, stored); delErr != nil {
			slog.Warn("failed to clean up photo after update error", "path", stored, "error", delErr)
		}
		return user.UserResponse{}, err
	}

	if oldPhoto != nil && *oldPhoto != stored {
		if err := s.fileStorage.Delete(ctx, *oldPhoto); err != nil {
			slog.Warn("failed to delete previous photo", "path", *oldPhoto, "error", err)
		}
	}

	return s.toResponse(ctx, updated), nil
}

// UpdateEmail implements user.UserService. The current password must be
// supplied again before the email changes.
func (s *UserServiceImpl) UpdateEmail(ctx context.Context, userID string, req user.UpdateEmailRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.verifyPassword(ctx, userID, req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	current.Email = req.Email
	updated, err := s.UserRepository.Update(ctx, current)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(ctx, updated), nil
}

// UpdateUsername implements user.UserService.
func (s *UserServiceImpl) UpdateUsername(ctx context.Context, userID string, req user.UpdateUsernameRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.verifyPassword(ctx, userID, req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	current.Username = req.Username
	updated, err := s.UserRepository.Update(ctx, current)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(ctx, updated), nil
}

// UpdateSalary implements user.UserService.
func (s *UserServiceImpl) UpdateSalary(ctx context.Context, userID string, req user.UpdateSalaryRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.verifyPassword(ctx, userID, req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	salary := req.Salary
	current.Salary = &salary
	updated, err := s.UserRepository.Update(ctx, current)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(ctx, updated), nil
}

// UpdatePassword implements user.UserService.
func (s *UserServiceImpl) UpdatePassword(ctx context.Context, userID string, req user.UpdatePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.verifyPassword(ctx, userID, req.CurrentPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UserRepository.UpdatePassword(ctx, userID, string(hash))
}

func (s *UserServiceImpl) verifyPassword(ctx context.Context, userID, password string) (user.User, error) {
	current, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(password)); err != nil {
		return user.User{}, user.ErrWrongPassword
	}
	return current, nil
}

func (s *UserServiceImpl) toResponse(ctx context.Context, u user.User) user.UserResponse {
	resp := user.ToUserResponse(u)
	if u.Photo != nil {
		url, err := s.fileStorage.GetURL(ctx, *u.Photo, 0)
		if err != nil {
			slog.Warn("failed to build photo url", "path", *u.Photo, "error", err)
		} else {
			resp.PhotoURL = &url
		}
	}
	return resp
}
