package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-soft/joyeria-api/internal/application/auth"
	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

type fakeUserRepo struct {
	repository.UserRepository
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func authFixture() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.Config{
		JWTSecret:  "secreto-de-test",
		Issuer:     "joyeria-api-test",
		ExpMinutes: 60,
	})
	return uc, repo
}

// El registro público nunca otorga el rol admin: aunque el body traiga campos
// extra, el usuario queda como vendedor y las rutas admin siguen protegidas.
func TestRegister_SiempreCreaVendedor(t *testing.T) {
	uc, repo := authFixture()

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "nueva@taller.local",
		Password: "contraseña-larga",
		Name:     "Nueva",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleVendedor, out.User.Role)
	created := repo.byEmail["nueva@taller.local"]
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleVendedor, created.Role)
	assert.NotEqual(t, "contraseña-larga", created.PasswordHash)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := authFixture()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "12345678", Name: "A"})
	require.NoError(t, err)
	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "12345678", Name: "A"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorta(t *testing.T) {
	uc, _ := authFixture()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "corta", Name: "A"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := authFixture()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "12345678", Name: "A"})
	require.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
