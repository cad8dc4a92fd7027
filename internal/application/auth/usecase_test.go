package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedeja/delivery-api/internal/application/auth"
	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// stubUserRepo controla a resposta de FindByEmail e captura o Create.
type stubUserRepo struct {
	byEmail map[string]*entity.User
	findErr error
	created *entity.User
}

func (s *stubUserRepo) Create(u *entity.User) error { s.created = u; return nil }
func (s *stubUserRepo) FindByEmail(email string) (*entity.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.byEmail[email], nil
}
func (s *stubUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }

var _ repository.UserRepository = (*stubUserRepo)(nil)

// stubAuthEstRepo devolve um estabelecimento fixo para o ID conhecido.
type stubAuthEstRepo struct {
	est *entity.Establishment
}

func (s *stubAuthEstRepo) Create(*entity.Establishment) error { return nil }
func (s *stubAuthEstRepo) GetByID(id string) (*entity.Establishment, error) {
	if s.est != nil && s.est.ID == id {
		return s.est, nil
	}
	return nil, nil
}
func (s *stubAuthEstRepo) GetBySlug(string) (*entity.Establishment, error) { return nil, nil }
func (s *stubAuthEstRepo) SlugExists(string) (bool, error)                 { return false, nil }
func (s *stubAuthEstRepo) Update(*entity.Establishment) error              { return nil }
func (s *stubAuthEstRepo) ReplaceOpeningHours(string, []entity.OpeningHour) error {
	return nil
}
func (s *stubAuthEstRepo) ListOpeningHours(string) ([]entity.OpeningHour, error) { return nil, nil }
func (s *stubAuthEstRepo) ReplacePaymentMethods(string, []entity.PaymentMethod) error {
	return nil
}
func (s *stubAuthEstRepo) ListPaymentMethods(string) ([]entity.PaymentMethod, error) {
	return nil, nil
}

var _ repository.EstablishmentRepository = (*stubAuthEstRepo)(nil)

const authEstID = "00000000-0000-0000-0000-0000000000aa"

func newAuthFixture() (*auth.AuthUseCase, *stubUserRepo) {
	users := &stubUserRepo{byEmail: make(map[string]*entity.User)}
	ests := &stubAuthEstRepo{est: &entity.Establishment{ID: authEstID, Name: "Cantina", Active: true}}
	uc := auth.NewAuthUseCase(users, ests, auth.JWTConfig{
		Secret:     "segredo-de-teste",
		ExpMinutes: 60,
		Issuer:     "pedeja-test",
	})
	return uc, users
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		EstablishmentID: authEstID,
		Email:           "dona@cantina.com",
		Password:        "senha-forte-123",
		Name:            "Dona Maria",
		Role:            entity.RoleOwner,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CriaComHashBcrypt(t *testing.T) {
	uc, users := newAuthFixture()

	resp, err := uc.RegisterUser(validRegister())
	require.NoError(t, err)

	assert.Equal(t, "dona@cantina.com", resp.Email)
	assert.Equal(t, entity.RoleOwner, resp.Role)
	require.NotNil(t, users.created)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(users.created.PasswordHash), []byte("senha-forte-123")))
}

func TestRegisterUser_EmailJaCadastrado(t *testing.T) {
	uc, users := newAuthFixture()
	users.byEmail["dona@cantina.com"] = &entity.User{ID: "u-1", Email: "dona@cantina.com"}

	_, err := uc.RegisterUser(validRegister())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Nil(t, users.created)
}

func TestRegisterUser_ErroDeBancoNaConsultaPropaga(t *testing.T) {
	uc, users := newAuthFixture()
	dbErr := errors.New("conexão recusada")
	users.findErr = dbErr

	// Falha na consulta de email não pode ser lida como "email livre":
	// o erro sobe e nenhum usuário é criado.
	_, err := uc.RegisterUser(validRegister())
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, users.created)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc, users := newAuthFixture()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-certa"), bcrypt.MinCost)
	require.NoError(t, err)
	users.byEmail["dona@cantina.com"] = &entity.User{
		ID: "u-1", EstablishmentID: authEstID, Email: "dona@cantina.com",
		PasswordHash: string(hash), Role: entity.RoleOwner, Status: "active",
	}

	_, err = uc.Login(dto.LoginRequest{Email: "dona@cantina.com", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
