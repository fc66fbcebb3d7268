package user

import (
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/store"
)

// Service manages the staff roster and permission grants.
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

func (s *Service) load() ([]User, error) {
	var users []User
	if err := s.store.Load(store.CollectionUsers, &users, DefaultUsers()); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) save(users []User) error {
	return s.store.Save(store.CollectionUsers, users)
}

func (s *Service) GetAll() ([]User, error) {
	return s.load()
}

func (s *Service) GetByID(id string) (*User, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, internal.ErrUserNotFound
}

// Workers returns the staff who appear in work-log and attendance
// screens: everyone below admin rank, plus the root user.
func (s *Service) Workers() ([]User, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}
	var workers []User
	for _, u := range users {
		if u.Role == RoleAdmin && !u.IsRoot() {
			continue
		}
		workers = append(workers, u)
	}
	return workers, nil
}

func (s *Service) Create(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	password := dto.Password
	if password == "" {
		password = InitialPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	users, err := s.load()
	if err != nil {
		return nil, err
	}

	created := User{
		ID:             uuid.NewString(),
		Name:           dto.Name,
		Role:           dto.Role,
		Email:          dto.Email,
		PasswordHash:   string(hash),
		Permissions:    normalizePermissions(dto.Permissions),
		Department:     dto.Department,
		JobTitle:       dto.JobTitle,
		WorkerCategory: dto.WorkerCategory,
	}
	users = append(users, created)

	if err := s.save(users); err != nil {
		return nil, err
	}
	s.logger.Info("user created", "user_id", created.ID, "role", created.Role)
	return &created, nil
}

// Update replaces the stored record wholesale, keyed by id. The password
// hash is preserved from the stored record; password changes go through
// the dedicated operations.
func (s *Service) Update(updated User) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == updated.ID {
			updated.PasswordHash = users[i].PasswordHash
			updated.Permissions = normalizePermissions(updated.Permissions)
			users[i] = updated
			return s.save(users)
		}
	}
	return internal.ErrUserNotFound
}

func (s *Service) UpdatePhoto(id, photoURL string) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].PhotoURL = photoURL
			return s.save(users)
		}
	}
	return internal.ErrUserNotFound
}

func (s *Service) Delete(id string) error {
	if id == RootUserID {
		return internal.ErrRootUserLocked
	}
	users, err := s.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			s.logger.Info("user deleted", "user_id", id)
			return s.save(users)
		}
	}
	return internal.ErrUserNotFound
}

// TogglePermission flips one token and enforces the VIEW/MANAGE pairing
// at the point of change: granting MANAGE grants the paired VIEW, and
// revoking VIEW revokes the paired MANAGE.
func (s *Service) TogglePermission(id string, perm Permission) (*User, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}

		perms := users[i].Permissions
		if hasPerm(perms, perm) {
			perms = removePerm(perms, perm)
			if manage, ok := pairedManage(perm); ok {
				perms = removePerm(perms, manage)
			}
		} else {
			perms = append(perms, perm)
			if view, ok := pairedView(perm); ok && !hasPerm(perms, view) {
				perms = append(perms, view)
			}
		}
		users[i].Permissions = perms

		if err := s.save(users); err != nil {
			return nil, err
		}
		s.logger.Info("permissions toggled", "user_id", id, "permission", perm)
		return &users[i], nil
	}
	return nil, internal.ErrUserNotFound
}

// SetPermissions replaces the grant list, normalizing it so every MANAGE
// token carries its paired VIEW token.
func (s *Service) SetPermissions(id string, perms []Permission) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].Permissions = normalizePermissions(perms)
			return s.save(users)
		}
	}
	return internal.ErrUserNotFound
}

// ResetPassword sets the account back to the well-known reset password.
func (s *Service) ResetPassword(id string) error {
	return s.setPassword(id, ResetPasswordTo)
}

// AdminSetPassword lets a user manager assign a password directly.
func (s *Service) AdminSetPassword(id, newPassword string) error {
	if newPassword == "" {
		return internal.NewValidationError("password cannot be empty", internal.ErrCodeValidationFailed)
	}
	return s.setPassword(id, newPassword)
}

// ChangePassword is the self-service path: the current password must
// match before the new one is stored.
func (s *Service) ChangePassword(id string, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	users, err := s.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(dto.OldPassword)) != nil {
			return internal.ErrWrongPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return internal.NewInternalError("failed to hash password", err)
		}
		users[i].PasswordHash = string(hash)
		s.logger.Info("password changed", "user_id", id)
		return s.save(users)
	}
	return internal.ErrUserNotFound
}

func (s *Service) setPassword(id, password string) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return internal.NewInternalError("failed to hash password", err)
			}
			users[i].PasswordHash = string(hash)
			s.logger.Info("password reset", "user_id", id)
			return s.save(users)
		}
	}
	return internal.ErrUserNotFound
}

func normalizePermissions(perms []Permission) []Permission {
	out := make([]Permission, 0, len(perms))
	for _, p := range perms {
		if !hasPerm(out, p) {
			out = append(out, p)
		}
	}
	for _, p := range perms {
		if view, ok := pairedView(p); ok && !hasPerm(out, view) {
			out = append(out, view)
		}
	}
	return out
}
