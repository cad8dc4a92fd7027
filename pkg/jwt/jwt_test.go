package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/pedeja/delivery-api/pkg/jwt"
)

const (
	testSecret = "segredo-de-teste-com-tamanho-razoavel"
	testUser   = "00000000-0000-0000-0000-000000000001"
	testEst    = "00000000-0000-0000-0000-000000000002"
	testIssuer = "delivery-api-test"
)

func TestGenerateEParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, testEst, "owner", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, estID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUser, userID)
	assert.Equal(t, testEst, estID)
	assert.Equal(t, "owner", role)
}

func TestParse_SecretErrado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, testEst, "owner", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("outro-segredo", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiração negativa: o token já nasce vencido.
	tok, err := pkgjwt.Generate(testSecret, testUser, testEst, "owner", testIssuer, -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_TokenAdulterado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, testEst, "staff", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok+"x")
	assert.Error(t, err)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUser, testEst, "owner", testIssuer, 60)
	assert.Error(t, err)

	_, _, _, err = pkgjwt.Parse("", "qualquer")
	assert.Error(t, err)
}
