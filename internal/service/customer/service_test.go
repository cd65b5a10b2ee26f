package customer

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type stubRepo struct {
	created   *domain.Customer
	createErr error
	lastInput domain.Customer
	byEmail   *domain.Customer
	byID      *domain.Customer
	err       error
}

func (s *stubRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	s.lastInput = c
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	c.ID = "cust-1"
	return &c, nil
}

func (s *stubRepo) GetByEmail(_ context.Context, _ string) (*domain.Customer, error) {
	return s.byEmail, s.err
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Customer, error) {
	return s.byID, s.err
}

func TestRegisterRequiresEmail(t *testing.T) {
	svc := New(&stubRepo{})
	_, err := svc.Register(context.Background(), RegisterInput{Email: "  ", Password: "Password1"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc := New(&stubRepo{})
	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "short"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	got, err := svc.Register(context.Background(), RegisterInput{
		Email:     "  Jane.Doe@Example.COM ",
		Password:  "Password1",
		FirstName: "Jane",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "jane.doe@example.com" {
		t.Fatalf("email not normalized: %s", got.Email)
	}
	if repo.lastInput.PasswordHash == "" || repo.lastInput.PasswordHash == "Password1" {
		t.Fatalf("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastInput.PasswordHash), []byte("Password1")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := New(&stubRepo{createErr: domain.ErrAlreadyExists})
	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "Password1"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}
}
