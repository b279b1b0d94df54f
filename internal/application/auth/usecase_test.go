package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecocycle/ecocycle-ims/internal/application/auth"
	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
	findErr error // si se asigna, FindByEmail falla con este error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*entity.User{},
		byEmail: map[string]*entity.User{},
	}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func jwtCfg() auth.JWTConfig {
	return auth.JWTConfig{Secret: "secret-de-prueba", ExpMinutes: 60, Issuer: "test"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg())

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@ecocycle.io",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.RoleOperator, out.Role, "sin rol explícito debe quedar operator")
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["ana@ecocycle.io"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura-123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-segura-123")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ecocycle.io", Password: "clave-segura-123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@ecocycle.io", Password: "otra-clave-456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Un fallo de la base al verificar el email no debe tratarse como "email libre".
func TestRegister_FalloAlVerificarEmailNoRegistra(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("conexión perdida")
	uc := auth.NewAuthUseCase(repo, jwtCfg())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ecocycle.io", Password: "clave-segura-123"})
	require.Error(t, err)
	assert.Empty(t, repo.byEmail, "no debe crearse ningún usuario")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidasEmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg())

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@ecocycle.io",
		Password: "clave-segura-123",
		Role:     entity.RoleManager,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@ecocycle.io", Password: "clave-segura-123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleManager, out.User.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ecocycle.io", Password: "clave-segura-123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ecocycle.io", Password: "clave-equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), jwtCfg())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@ecocycle.io", Password: "da-igual"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoProhibido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg())

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ecocycle.io", Password: "clave-segura-123"})
	require.NoError(t, err)

	inactive := "inactive"
	_, err = uc.UpdateUser(out.ID, dto.UpdateUserRequest{Status: &inactive})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ecocycle.io", Password: "clave-segura-123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración de usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateUser_CambiaRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg())

	created, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ecocycle.io", Password: "clave-segura-123"})
	require.NoError(t, err)

	admin := entity.RoleAdmin
	out, err := uc.UpdateUser(created.ID, dto.UpdateUserRequest{Role: &admin})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestUpdateUser_Inexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), jwtCfg())

	name := "x"
	out, err := uc.UpdateUser("no-existe", dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "usuario inexistente devuelve nil sin error")
}
