package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ceasahub/intake-api/internal/application/auth"
	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
	"github.com/ceasahub/intake-api/internal/domain/repository"
)

// UserUseCase gestión de cuentas (solo admin): alta, listado, baja y edición
// de permisos. El gate de rol se aplica en el middleware HTTP.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea una cuenta con el conjunto de permisos explícito recibido.
// Permisos sin especificar = ninguno; marcar las cuatro pestañas es una
// conveniencia de la UI, no un default del dominio.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	perms, ok := normalizePermissions(in.Permissions)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Permissions:  perms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List lista todas las cuentas, sin hashes.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items}, nil
}

// Delete elimina una cuenta. Los registros y auditorías atribuidos a ella
// sobreviven: guardan el username como snapshot y no tienen FK a users.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

// SetPermissions reemplaza el conjunto de permisos de una cuenta.
func (uc *UserUseCase) SetPermissions(id string, in dto.SetPermissionsRequest) (*dto.UserResponse, error) {
	perms, ok := normalizePermissions(in.Permissions)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Permissions = perms
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// normalizePermissions valida que cada permiso sea conocido y elimina
// duplicados conservando el orden canónico tab1..tab4.
func normalizePermissions(perms []string) ([]string, bool) {
	seen := make(map[string]bool, len(perms))
	for _, p := range perms {
		valid := false
		for _, known := range entity.AllPermissions() {
			if p == known {
				valid = true
				break
			}
		}
		if !valid {
			return nil, false
		}
		seen[p] = true
	}
	out := make([]string, 0, len(seen))
	for _, known := range entity.AllPermissions() {
		if seen[known] {
			out = append(out, known)
		}
	}
	return out, true
}
