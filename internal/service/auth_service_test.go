package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/dumo-express/internal/config"
	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/models"
	"github.com/dumo-express/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "test-secret-key-for-auth-service-tests",
			ExpireHours: 24,
		},
	}
	return NewAuthService(cfg, repository.NewAdminRepository(db)), db
}

func seedAdmin(t *testing.T, db *gorm.DB, username, password, role string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
	return admin
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	seeded := seedAdmin(t, db, "operator", "s3cret-pass", constants.RoleAdmin)

	admin, token, expiresAt, err := svc.Login("operator", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if admin.ID != seeded.ID {
		t.Fatalf("expected admin id %d, got %d", seeded.ID, admin.ID)
	}
	if admin.LastLoginAt == nil {
		t.Fatalf("expected last login timestamp to be set")
	}
	if !expiresAt.After(time.Now().Add(23 * time.Hour)) {
		t.Fatalf("expected ~24h expiry, got: %v", expiresAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AdminID != seeded.ID || claims.Username != "operator" || claims.Role != constants.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	seedAdmin(t, db, "operator", "s3cret-pass", constants.RoleAdmin)

	if _, _, _, err := svc.Login("operator", "wrong-pass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got: %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "s3cret-pass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got: %v", err)
	}
}

func TestParseJWTRejectsTamperedToken(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	seedAdmin(t, db, "operator", "s3cret-pass", constants.RoleAdmin)

	_, token, _, err := svc.Login("operator", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
	if _, err := svc.ParseJWT("not.a.token"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	hash, err := svc.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if err := svc.VerifyPassword(hash, "correct horse battery staple"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if err := svc.VerifyPassword(hash, "incorrect horse"); err == nil {
		t.Fatalf("expected mismatch to fail")
	}
}
