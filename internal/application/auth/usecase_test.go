package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/reaksa/stockford-api/internal/application/auth"
	"github.com/reaksa/stockford-api/internal/application/dto"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/domain/repository"
	pkgjwt "github.com/reaksa/stockford-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(user *entity.User) error { r.users[user.ID] = user; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(*entity.User) error { return nil }
func (r *fakeUserRepo) Delete(string) error       { return nil }

func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stockford-test"}

func seedUser(t *testing.T, password string) (*fakeUserRepo, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	user := &entity.User{
		ID:           "user-1",
		Username:     "bodega",
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return &fakeUserRepo{users: map[string]*entity.User{user.ID: user}}, user
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo, user := seedUser(t, "secret123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Username: "bodega", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, entity.RoleUser, out.User.Role)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleUser, role)
}

// Usuario inexistente y password incorrecto devuelven el mismo error para
// no filtrar qué usernames existen.
func TestLogin_MismoErrorParaUsuarioYPassword(t *testing.T) {
	repo, _ := seedUser(t, "secret123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, errNoUser := uc.Login(dto.LoginRequest{Username: "ghost", Password: "secret123"})
	_, errBadPass := uc.Login(dto.LoginRequest{Username: "bodega", Password: "wrong"})

	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.Equal(t, errNoUser, errBadPass)
}

func TestMe_UsuarioDelToken(t *testing.T) {
	repo, user := seedUser(t, "secret123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Me(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bodega", out.User.Username)
}

func TestMe_UsuarioEliminado(t *testing.T) {
	repo, _ := seedUser(t, "secret123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Me("deleted-user")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
