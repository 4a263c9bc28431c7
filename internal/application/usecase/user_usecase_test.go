package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/reaksa/stockford-api/internal/application/dto"
	"github.com/reaksa/stockford-api/internal/application/usecase"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
)

func TestUserCreate_RolPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{Username: "bodega", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, out.Role)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")),
		"el password se guarda como hash bcrypt")
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{Username: "bodega", Password: "secret123"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{Username: "bodega", Password: "otro456"})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(dto.CreateUserRequest{Username: "x", Password: "y", Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_RehashSoloConPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(dto.CreateUserRequest{Username: "bodega", Password: "secret123"})
	require.NoError(t, err)

	before, err := repo.GetByID(created.ID)
	require.NoError(t, err)

	role := entity.RoleAdmin
	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)

	after, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash,
		"sin password nuevo el hash no cambia")
	assert.Equal(t, entity.RoleAdmin, after.Role)

	newPass := "nuevo789"
	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Password: &newPass})
	require.NoError(t, err)

	rehashed, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, rehashed.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rehashed.PasswordHash), []byte("nuevo789")))
}

func TestUserUpdate_UsernameOcupado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{Username: "alpha", Password: "secret123"})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateUserRequest{Username: "beta", Password: "secret123"})
	require.NoError(t, err)

	taken := "alpha"
	_, err = uc.Update(second.ID, dto.UpdateUserRequest{Username: &taken})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestUserDelete_NoPermiteAutoEliminacion(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(dto.CreateUserRequest{Username: "admin", Password: "secret123", Role: entity.RoleAdmin})
	require.NoError(t, err)

	err = uc.Delete(created.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDelete)

	still, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, still, "el usuario sigue existiendo")
}

func TestUserDelete_OtroUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	target, err := uc.Create(dto.CreateUserRequest{Username: "target", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(target.ID, "another-admin-id"))

	gone, err := repo.GetByID(target.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
