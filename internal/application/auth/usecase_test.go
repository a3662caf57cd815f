package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ceasahub/intake-api/internal/application/auth"
	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
	pkgjwt "github.com/ceasahub/intake-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repo de usuarios (contrato (nil, nil) cuando no existe)
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users = append(r.users, u); return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) { return r.users, nil }

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

const (
	testSecret = "test-secret"
	testIssuer = "ceasa-intake-test"
	adminID    = "00000000-0000-0000-0000-000000000001"
	mariaID    = "00000000-0000-0000-0000-000000000002"
)

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	adminHash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	mariaHash, err := bcrypt.GenerateFromPassword([]byte("secreta"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: []*entity.User{
		{
			ID:           adminID,
			Username:     "admin",
			PasswordHash: string(adminHash),
			Role:         entity.RoleAdmin,
			Permissions:  entity.AllPermissions(),
			CreatedAt:    time.Now(),
		},
		{
			ID:           mariaID,
			Username:     "maria",
			PasswordHash: string(mariaHash),
			Role:         entity.RoleRegistrador,
			Permissions:  []string{entity.PermRegister},
			CreatedAt:    time.Now(),
		},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteTokenConRolYPermisos(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "123456"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, entity.AllPermissions(), claims.Permissions)

	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_PasswordIncorrecta_RetornaUnauthorized(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "equivocada"})
	assert.Equal(t, domain.ErrUnauthorized, err)
}

func TestLogin_UsuarioDesconocido_MismoErrorQuePasswordMala(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, errUnknown := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	_, errBadPass := uc.Login(dto.LoginRequest{Username: "admin", Password: "x"})

	assert.Equal(t, domain.ErrUnauthorized, errUnknown)
	assert.Equal(t, errBadPass, errUnknown,
		"usuario inexistente y password incorrecta deben ser indistinguibles")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_PropiaCuenta(t *testing.T) {
	uc, _ := newAuthFixture(t)

	err := uc.ChangePassword(mariaID, entity.RoleRegistrador, dto.ChangePasswordRequest{
		NewPassword:     "nueva",
		ConfirmPassword: "nueva",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "nueva"})
	assert.NoError(t, err, "la nueva contraseña debe funcionar")

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta"})
	assert.Equal(t, domain.ErrUnauthorized, err, "la contraseña vieja deja de funcionar")
}

func TestChangePassword_ConfirmacionNoCoincide(t *testing.T) {
	uc, _ := newAuthFixture(t)

	err := uc.ChangePassword(mariaID, entity.RoleRegistrador, dto.ChangePasswordRequest{
		NewPassword:     "nueva",
		ConfirmPassword: "otra",
	})
	assert.Equal(t, domain.ErrInvalidInput, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta"})
	assert.NoError(t, err, "el rechazo no debe tocar la cuenta")
}

func TestChangePassword_NoAdminNoPuedeTocarOtraCuenta(t *testing.T) {
	uc, _ := newAuthFixture(t)

	err := uc.ChangePassword(mariaID, entity.RoleRegistrador, dto.ChangePasswordRequest{
		UserID:          adminID,
		NewPassword:     "hackeada",
		ConfirmPassword: "hackeada",
	})
	assert.Equal(t, domain.ErrForbidden, err)
}

func TestChangePassword_AdminPuedeTocarOtraCuenta(t *testing.T) {
	uc, _ := newAuthFixture(t)

	err := uc.ChangePassword(adminID, entity.RoleAdmin, dto.ChangePasswordRequest{
		UserID:          mariaID,
		NewPassword:     "reseteada",
		ConfirmPassword: "reseteada",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "reseteada"})
	assert.NoError(t, err)
}

func TestChangePassword_CuentaInexistente(t *testing.T) {
	uc, _ := newAuthFixture(t)

	err := uc.ChangePassword(adminID, entity.RoleAdmin, dto.ChangePasswordRequest{
		UserID:          "00000000-0000-0000-0000-0000000000ff",
		NewPassword:     "x",
		ConfirmPassword: "x",
	})
	assert.Equal(t, domain.ErrUserNotFound, err)
}
