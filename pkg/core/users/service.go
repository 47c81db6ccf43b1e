// Package users implements admin-side management of dashboard users.
package users

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"franchise_dashboard/pkg/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	ErrMissingFields = errors.New("todos los campos son obligatorios")
	ErrWeakPassword  = fmt.Errorf("la contraseña debe tener al menos %d caracteres", minPasswordLength)
	ErrInvalidEmail  = errors.New("el email no es válido")
	ErrInvalidRole   = errors.New("rol no válido")
	ErrSelfDelete    = errors.New("no puedes eliminar tu propio usuario")
)

var advisorRoles = []models.Role{models.RoleAdmin, models.RoleSuperadmin}

var validRoles = map[models.Role]bool{
	models.RoleSuperadmin: true,
	models.RoleAdmin:      true,
	models.RoleAsesor:     true,
	models.RoleFranchisee: true,
}

// Repository is the persistence the service needs; store.ProfileRepo satisfies it.
type Repository interface {
	Create(ctx context.Context, p *models.Profile) error
	ListByRoles(ctx context.Context, roles []models.Role) ([]models.Profile, error)
	Delete(ctx context.Context, id string) error
}

// Notifier sends the welcome message to newly created users.
type Notifier interface {
	SendWelcome(ctx context.Context, to, fullName, roleLabel string) error
}

type CreateUserRequest struct {
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

// NewService creates a user service. notifier may be nil.
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

// CreateUser validates the request, hashes the password and stores the profile.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*models.Profile, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.FullName == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, ErrMissingFields
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}
	if at := strings.Index(req.Email, "@"); at <= 0 || at == len(req.Email)-1 {
		return nil, ErrInvalidEmail
	}
	if !validRoles[req.Role] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &models.Profile{
		ID:           uuid.New().String(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	log.Printf("[USERS] Created %s (%s)", profile.Email, profile.Role)

	if s.notifier != nil {
		if err := s.notifier.SendWelcome(ctx, profile.Email, profile.FullName, RoleLabel(profile.Role)); err != nil {
			log.Printf("[USERS] Welcome email to %s failed: %v", profile.Email, err)
		}
	}
	return profile, nil
}

// ListAdvisors returns admin and superadmin users, newest first.
func (s *Service) ListAdvisors(ctx context.Context) ([]models.Profile, error) {
	return s.repo.ListByRoles(ctx, advisorRoles)
}

// DeleteAdvisor removes a profile. Users cannot delete themselves.
func (s *Service) DeleteAdvisor(ctx context.Context, actorID, advisorID string) error {
	if actorID != "" && actorID == advisorID {
		return ErrSelfDelete
	}
	if err := s.repo.Delete(ctx, advisorID); err != nil {
		return err
	}
	log.Printf("[USERS] Deleted advisor %s (by %s)", advisorID, actorID)
	return nil
}

// RoleLabel is the display name of a role.
func RoleLabel(role models.Role) string {
	switch role {
	case models.RoleSuperadmin:
		return "Super Admin"
	case models.RoleAdmin:
		return "Admin"
	default:
		return string(role)
	}
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(p *models.Profile, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}
