package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
	"github.com/ceasahub/intake-api/internal/domain/repository"
	"github.com/ceasahub/intake-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password con bcrypt, genera el JWT con rol y
// permisos y retorna token + usuario. Usuario desconocido y contraseña
// incorrecta devuelven el mismo ErrUnauthorized: el caller no puede
// distinguir cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, user.Permissions, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ChangePassword cambia la contraseña de la propia cuenta, o de otra si el
// actor es admin. La confirmación debe coincidir antes de tocar la cuenta.
func (uc *AuthUseCase) ChangePassword(actorID, actorRole string, in dto.ChangePasswordRequest) error {
	if in.NewPassword == "" || in.NewPassword != in.ConfirmPassword {
		return domain.ErrInvalidInput
	}
	targetID := in.UserID
	if targetID == "" {
		targetID = actorID
	}
	if targetID != actorID && actorRole != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// ToUserResponse convierte la entidad a su DTO de salida (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		Permissions: perms,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
