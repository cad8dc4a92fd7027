package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedeja/delivery-api/pkg/slug"
)

func TestMake_RemoveAcentosEEspacos(t *testing.T) {
	assert.Equal(t, "pizzaria-do-joao", slug.Make("Pizzaria do João"))
	assert.Equal(t, "acai-cia", slug.Make("Açaí & Cia"))
	assert.Equal(t, "hamburgueria-2-irmaos", slug.Make("Hamburgueria 2 Irmãos"))
}

func TestMake_ApararHifens(t *testing.T) {
	assert.Equal(t, "lanches", slug.Make("  --Lanches--  "))
}

func TestIsValid(t *testing.T) {
	assert.True(t, slug.IsValid("pizzaria-do-joao"))
	assert.False(t, slug.IsValid("ab"), "curto demais")
	assert.False(t, slug.IsValid("Com-Maiuscula"))
	assert.False(t, slug.IsValid("com espaço"))
	assert.False(t, slug.IsValid("-comeca-com-hifen"))
}
