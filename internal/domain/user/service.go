package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, email, password string) (int, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// SessionRevoker отзывает все сессии пользователя при его удалении.
type SessionRevoker interface {
	RevokeAllForUser(ctx context.Context, userID int) error
}

// DocumentPurger удаляет все метаданные документов пользователя.
type DocumentPurger interface {
	DeleteAllForUser(ctx context.Context, userID int) error
}

type Service struct {
	repo      Repository
	validator Validator
	sessions  SessionRevoker
	documents DocumentPurger
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, sessions SessionRevoker, documents DocumentPurger, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		sessions:  sessions,
		documents: documents,
		log:       log,
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (int, error) {
	if err := s.validator.ValidateRegister(email, password); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, email, string(hash))
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	if res := s.validator.ValidateEmail(email); !res.IsValid {
		return User{}, ErrInvalidAuth
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return u, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return u, ErrInvalidAuth
	}

	return u, nil
}

// DeleteByEmail удаляет пользователя вместе с его сессиями и метаданными
// документов. Зависимые записи чистятся явно, а не через каскад в схеме:
// порядок удаления не должен зависеть от миграций. Используется только
// утилитой массовой очистки тестовых аккаунтов.
func (s *Service) DeleteByEmail(ctx context.Context, email string) error {
	if res := s.validator.ValidateEmail(email); !res.IsValid {
		return fmt.Errorf("%w: %s", ErrInvalidInput, res.Errors[0])
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return ErrNotFound
	}

	if err := s.sessions.RevokeAllForUser(ctx, u.ID); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	if err := s.documents.DeleteAllForUser(ctx, u.ID); err != nil {
		return fmt.Errorf("purge documents: %w", err)
	}

	return s.repo.DeleteByEmail(ctx, email)
}
