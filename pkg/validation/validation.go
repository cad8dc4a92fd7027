// Package validation centraliza a validação de structs de entrada.
// Converte o resultado do go-playground/validator em um mapa campo -> mensagem
// pronto para ser devolvido ao cliente junto ao formulário.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// phoneRe aceita telefones brasileiros com ou sem DDI: +5511999998888, 11999998888.
var phoneRe = regexp.MustCompile(`^(\+55)?\d{10,11}$`)

// hourRe formato HH:MM de 24h.
var hourRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Validator instância configurada com as regras customizadas da aplicação.
type Validator struct {
	v *validator.Validate
}

// New cria o validador e registra as regras próprias (slug, br_phone, hour_24h).
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("slug", isSlug); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("br_phone", isBRPhone); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("hour_24h", isHour24); err != nil {
		return nil, err
	}
	return &Validator{v: v}, nil
}

// Struct valida o struct e devolve um mapa campo -> mensagem.
// Mapa vazio (nil) significa entrada válida.
func (va *Validator) Struct(in any) map[string]string {
	err := va.v.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldName(fe)] = message(fe)
	}
	return out
}

// fieldName usa snake_case do nome do campo para casar com o JSON das requisições.
func fieldName(fe validator.FieldError) string {
	var b strings.Builder
	for i, r := range fe.Field() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		return "valor abaixo do mínimo (" + fe.Param() + ")"
	case "max":
		return "valor acima do máximo (" + fe.Param() + ")"
	case "slug":
		return "slug inválido: use apenas letras minúsculas, números e hífens"
	case "br_phone":
		return "telefone inválido"
	case "hour_24h":
		return "horário inválido, use HH:MM"
	case "oneof":
		return "valor fora das opções permitidas"
	default:
		return "valor inválido"
	}
}

func isSlug(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return len(s) >= 3 && len(s) <= 60 && slugRe.MatchString(s)
}

func isBRPhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}

func isHour24(fl validator.FieldLevel) bool {
	return hourRe.MatchString(fl.Field().String())
}
