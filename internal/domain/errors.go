package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrSlugTaken          = errors.New("slug já está em uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrInvalidTransition  = errors.New("transição de status inválida")
	ErrCouponInvalid      = errors.New("cupom inválido para este pedido")
	ErrStepIncomplete     = errors.New("etapa anterior do onboarding incompleta")
)
