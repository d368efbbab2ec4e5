package user

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abghifareihand/overtime-connect-backend/internal/domain/user"
)

type fakeUserRepository struct {
	users  map[string]user.User
	nextID int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]user.User{}, nextID: 1}
}

func (f *fakeUserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) GetByLogin(_ context.Context, login string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == login || u.Username == login {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) Update(_ context.Context, u user.User) (user.User, error) {
	current, ok := f.users[u.ID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	for id, existing := range f.users {
		if id == u.ID {
			continue
		}
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	u.PasswordHash = current.PasswordHash
	u.UpdatedAt = time.Now()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

// fakeFileStorage records uploads and deletions in memory.
type fakeFileStorage struct {
	files   map[string][]byte
	deleted []string
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{files: map[string][]byte{}}
}

func (f *fakeFileStorage) Upload(_ context.Context, file io.Reader, path string, _ string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.files[path] = data
	return path, nil
}

func (f *fakeFileStorage) Delete(_ context.Context, path string) error {
	delete(f.files, path)
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeFileStorage) GetURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func (f *fakeFileStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

const testPassword = "password123"

func seedUser(t *testing.T, repo *fakeUserRepository) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), user.User{
		Fullname:     "Abghi Fareihand",
		Email:        "abghi@example.com",
		Username:     "abghi",
		PasswordHash: string(hash),
	})
	require.NoError(t, err)
	return created
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepository()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, newFakeFileStorage())

	profile, err := svc.GetProfile(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, profile.ID)
	assert.Equal(t, "abghi@example.com", profile.Email)
	assert.Nil(t, profile.PhotoURL)

	_, err = svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newFakeUserRepository()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, newFakeFileStorage())

	profile, err := svc.UpdateProfile(context.Background(), seeded.ID, user.UpdateProfileRequest{
		Fullname:    strPtr("Abghi F."),
		WorkingDays: intPtr(6),
	})
	require.NoError(t, err)
	assert.Equal(t, "Abghi F.", profile.Fullname)
	require.NotNil(t, profile.WorkingDays)
	assert.Equal(t, 6, *profile.WorkingDays)
	// untouched fields survive
	assert.Equal(t, "abghi", profile.Username)
}

func TestUpdateProfileValidation(t *testing.T) {
	repo := newFakeUserRepository()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, newFakeFileStorage())

	_, err := svc.UpdateProfile(context.Background(), seeded.ID, user.UpdateProfileRequest{
		WorkingDays: intPtr(4),
	})
	assert.Error(t, err)
}

func TestUpdatePhotoReplacesOld(t *testing.T) {
	repo := newFakeUserRepository()
	seeded := seedUser(t, repo)
	store := newFakeFileStorage()
	svc := NewUserService(repo, store)
	ctx := context.Background()

	first, err := svc.UpdatePhoto(ctx, seeded.ID, bytes.NewReader([]byte("one")), "me.png", "image/png")
	require.NoError(t, err)
	require.NotNil(t, first.PhotoURL)
	assert.True(t, strings.HasSuffix(*first.PhotoURL, ".png"))
	assert.Empty(t, store.deleted)

	second, err := svc.UpdatePhoto(ctx, seeded.ID, bytes.NewReader([]byte("two")), "me.jpg", "image/jpeg")
	require.NoError(t, err)
	require.NotNil(t, second.PhotoURL)
	assert.NotEqual(t, *first.PhotoURL, *second.PhotoURL)
	assert.Len(t, store.deleted, 1)
	assert.Len(t, store.files, 1)
}

func TestUpdateEmailRequiresPassword(t *testing.T) {
	repo := newFakeUserRepository()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, newFakeFileStorage())
	ctx := context.Background()

	_, err := svc.UpdateEmail(ctx, seeded.ID, user.UpdateEmailRequest{
		Email:    "new@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, user.ErrWrongPassword)

	profile, err := svc.UpdateEmail(ctx, seeded.ID, user.UpdateEmailRequest{
		Email:    "new@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
}

func TestUpdateUsernameConflict(t *testing.T) {
	repo := newFakeUserRepository()
	seeded := seedUser(t, repo)
	hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	_, err := repo.Create(context.Background(), user.User{
		Fullname:     "Other",
		Email:        "other@example.com",
		Username:     "other",
		PasswordHash: string(hash),
	})
	require.NoError(t, err)

	svc := NewUserService(repo, newFakeFileStorage())

	_, err = svc.UpdateUsername(context.Background(), seeded.ID, user.UpdateUsernameRequest{
		Username: "other",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUpdateSalary(t *testing.T) {
	repo := newFakeUserRepository()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, newFakeFileStorage())

	profile, err := svc.UpdateSalary(context.Background(), seeded.ID, user.UpdateSalaryRequest{
		Salary:   decimal.NewFromInt(7_500_000),
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, profile.Salary)
	assert.True(t, profile.Salary.Equal(decimal.NewFromInt(7_500_000)))
}

func TestUpdatePassword(t *testing.T) {
	repo := newFakeUserRepository()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, newFakeFileStorage())
	ctx := context.Background()

	err := svc.UpdatePassword(ctx, seeded.ID, user.UpdatePasswordRequest{
		CurrentPassword:      "nope",
		NewPassword:          "new-password-1",
		NewPasswordConfirmed: "new-password-1",
	})
	assert.ErrorIs(t, err, user.ErrWrongPassword)

	err = svc.UpdatePassword(ctx, seeded.ID, user.UpdatePasswordRequest{
		CurrentPassword:      testPassword,
		NewPassword:          "new-password-1",
		NewPasswordConfirmed: "new-password-1",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password-1")))
}
