package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"kaloria-backend/domain"
	"kaloria-backend/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byEmail: make(map[string]*entities.User),
		byID:    make(map[string]*entities.User),
	}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

// stubJWTService avoids the mail path in Register: its claim tokens fail,
// which sendVerificationMail treats as best-effort.
type stubJWTService struct {
	claims jwtlib.MapClaims
}

func (s *stubJWTService) GenerateTokenUser(_ string, _ string) string { return "stub-token" }

func (s *stubJWTService) ValidateTokenUser(_ string) (*jwtlib.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (s *stubJWTService) GetUserIDByToken(_ string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func (s *stubJWTService) GenerateTokenWithClaims(_ map[string]any, _ time.Duration) (string, error) {
	return "", errors.New("signing unavailable")
}

func (s *stubJWTService) ValidateTokenWithClaims(_ string) (jwtlib.MapClaims, error) {
	if s.claims == nil {
		return nil, domain.ErrTokenInvalid
	}
	return s.claims, nil
}

func seedUser(t *testing.T, repo *fakeUserRepository, email, password string) *entities.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := &entities.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		FullName: "Test User",
		Role:     domain.RoleUser,
	}
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "a@b.com", "password123")

	service := NewUserService(repo, &stubJWTService{})

	req := domain.UserRegisterRequest{Email: "a@b.com", Password: "password123", FullName: "Dup"}
	_, err := service.Register(context.Background(), req)
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &stubJWTService{})

	req := domain.UserRegisterRequest{Email: "a@b.com", Password: "password123", FullName: "Test User"}
	res, err := service.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	stored := repo.byEmail["a@b.com"]
	if stored.Password == "password123" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if res.Email != "a@b.com" {
		t.Errorf("response email = %q", res.Email)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "a@b.com", "password123")

	service := NewUserService(repo, &stubJWTService{})

	req := domain.UserLoginRequest{Email: "a@b.com", Password: "wrong"}
	_, err := service.Login(context.Background(), req)
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("expected ErrCredentialsInvalid, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &stubJWTService{})

	req := domain.UserLoginRequest{Email: "nobody@b.com", Password: "password123"}
	_, err := service.Login(context.Background(), req)
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("expected ErrCredentialsInvalid, got %v", err)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "a@b.com", "password123")

	service := NewUserService(repo, &stubJWTService{})

	res, err := service.Login(context.Background(), domain.UserLoginRequest{Email: "a@b.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "stub-token" {
		t.Errorf("Token = %q", res.Token)
	}
	if res.Role != domain.RoleUser {
		t.Errorf("Role = %q", res.Role)
	}
}

func TestVerifyEmailRejectsWrongPurpose(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(t, repo, "a@b.com", "password123")

	service := NewUserService(repo, &stubJWTService{
		claims: jwtlib.MapClaims{"user_id": user.ID.String(), "purpose": "reset_password"},
	})

	err := service.VerifyEmail(context.Background(), "some-token")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyEmailMarksVerified(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(t, repo, "a@b.com", "password123")

	service := NewUserService(repo, &stubJWTService{
		claims: jwtlib.MapClaims{"user_id": user.ID.String(), "purpose": "verify_email"},
	})

	if err := service.VerifyEmail(context.Background(), "some-token"); err != nil {
		t.Fatalf("VerifyEmail: %v", err)
	}
	if !repo.byEmail["a@b.com"].IsVerified {
		t.Error("user not marked verified")
	}

	err := service.VerifyEmail(context.Background(), "some-token")
	if !errors.Is(err, domain.ErrEmailAlreadyVerified) {
		t.Fatalf("expected ErrEmailAlreadyVerified on second verify, got %v", err)
	}
}

func TestResetPasswordUpdatesHash(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(t, repo, "a@b.com", "password123")

	service := NewUserService(repo, &stubJWTService{
		claims: jwtlib.MapClaims{"user_id": user.ID.String(), "purpose": "reset_password"},
	})

	req := domain.ResetPasswordRequest{Token: "some-token", Password: "newpassword"}
	if err := service.ResetPassword(context.Background(), req); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	stored := repo.byEmail["a@b.com"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpassword")); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}
}
