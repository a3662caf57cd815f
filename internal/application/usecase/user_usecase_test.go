package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/application/usecase"
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests UserUseCase — gestión de cuentas
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_CrearConPermisosExplicitos(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	out, err := uc.Create(dto.CreateUserRequest{
		Username:    "maria",
		Password:    "secreta",
		Role:        entity.RoleRegistrador,
		Permissions: []string{entity.PermRegister, entity.PermReport},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.RoleRegistrador, out.Role)
	assert.Equal(t, []string{entity.PermRegister, entity.PermReport}, out.Permissions)
}

func TestUser_SinPermisos_QuedaSinPermisos(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	out, err := uc.Create(dto.CreateUserRequest{
		Username: "jose",
		Password: "secreta",
		Role:     entity.RoleAuditor,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Permissions,
		"no especificar permisos significa ninguno, el default no es todo marcado")
}

func TestUser_PermisosSeNormalizanAlOrdenCanonico(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	out, err := uc.Create(dto.CreateUserRequest{
		Username:    "ana",
		Password:    "secreta",
		Role:        entity.RoleAdmin,
		Permissions: []string{entity.PermManageUsers, entity.PermRegister, entity.PermRegister},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.PermRegister, entity.PermManageUsers}, out.Permissions,
		"duplicados eliminados y orden canónico tab1..tab4")
}

func TestUser_PermisoDesconocido_RetornaInvalidInput(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	_, err := uc.Create(dto.CreateUserRequest{
		Username:    "ana",
		Password:    "secreta",
		Role:        entity.RoleAdmin,
		Permissions: []string{"tab9"},
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestUser_RolDesconocido_RetornaInvalidInput(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	_, err := uc.Create(dto.CreateUserRequest{
		Username: "ana",
		Password: "secreta",
		Role:     "gerente",
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestUser_UsernameDuplicado_RetornaConflicto(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	_, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "a", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{Username: "maria", Password: "b", Role: entity.RoleAuditor})
	assert.Equal(t, domain.ErrUsernameAlreadyExists, err)
}

func TestUser_EliminarInexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	err := uc.Delete("00000000-0000-0000-0000-0000000000ff")
	assert.Equal(t, domain.ErrUserNotFound, err)
}

func TestUser_Eliminar_SacaLaCuentaDelListado(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "a", Role: entity.RoleAdmin})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestUser_SetPermissions_ReemplazaElConjunto(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	created, err := uc.Create(dto.CreateUserRequest{
		Username:    "maria",
		Password:    "a",
		Role:        entity.RoleRegistrador,
		Permissions: []string{entity.PermRegister},
	})
	require.NoError(t, err)

	out, err := uc.SetPermissions(created.ID, dto.SetPermissionsRequest{
		Permissions: []string{entity.PermAudit, entity.PermReport},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.PermAudit, entity.PermReport}, out.Permissions,
		"la edición reemplaza el conjunto completo, no agrega")
}

func TestUser_SetPermissions_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	_, err := uc.SetPermissions("no-existe", dto.SetPermissionsRequest{
		Permissions: []string{entity.PermAudit},
	})
	assert.Equal(t, domain.ErrUserNotFound, err)
}
