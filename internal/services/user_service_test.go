package services

import (
	"context"
	"testing"
	"time"

	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

type fakeUsers struct {
	byID    map[string]models.User
	byEmail map[string]models.User
	nextID  int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]models.User{}, byEmail: map[string]models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, username, email, hash string) (models.User, error) {
	if _, ok := f.byEmail[email]; ok {
		return models.User{}, repo.ErrDuplicate
	}
	f.nextID++
	u := models.User{ID: string(rune('a' + f.nextID)), Username: username, Email: email, PasswordHash: hash}
	f.byID[u.ID] = u
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func newUserService() (*UserService, *auth.TokenManager) {
	tm := auth.NewTokenManager("test-secret", "test", time.Minute, time.Hour)
	return NewUserService(newFakeUsers(), tm), tm
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	cases := []struct {
		name                      string
		username, email, password string
		want                      Kind
	}{
		{"short username", "ab", "a@example.com", "password1", KindValidation},
		{"bad email", "alice", "nope", "password1", KindValidation},
		{"short password", "alice", "a@example.com", "short", KindValidation},
		{"ok", "alice", "a@example.com", "password1", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.email, tc.password)
			if KindOf(err) != tc.want {
				t.Fatalf("want kind %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "a@example.com", "password1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, "alice2", "a@example.com", "password1")
	if KindOf(err) != KindConflict {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc, tm := newUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "a@example.com", "password1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access, _, err := svc.Login(ctx, "a@example.com", "password1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, isRefresh, err := tm.ParseAny(access)
	if err != nil || isRefresh {
		t.Fatalf("token: %v refresh=%v", err, isRefresh)
	}
	if claims.UserID != u.ID || claims.Role != auth.RoleOwner {
		t.Fatalf("claims: %+v", claims)
	}

	if _, _, err := svc.Login(ctx, "a@example.com", "wrong-pass"); KindOf(err) != KindUnauthorized {
		t.Fatalf("bad password: want unauthorized, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "password1"); KindOf(err) != KindUnauthorized {
		t.Fatalf("unknown email: want unauthorized, got %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, tm := newUserService()

	access, refresh, _, err := tm.GeneratePair("u1")
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	if _, _, err := svc.Refresh(access); KindOf(err) != KindUnauthorized {
		t.Fatalf("access token as refresh: want unauthorized, got %v", err)
	}
	if _, _, err := svc.Refresh(refresh); err != nil {
		t.Fatalf("refresh: %v", err)
	}
}

func TestRefreshKeepsGuestBinding(t *testing.T) {
	svc, tm := newUserService()

	_, refresh, _, err := tm.GenerateGuestPair("guest:7", 3, 9)
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	access, _, err := svc.Refresh(refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	claims, _, err := tm.ParseAny(access)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Role != auth.RoleGuest || claims.TreeID != 3 || claims.MemberID != 9 {
		t.Fatalf("binding lost: %+v", claims)
	}
}
