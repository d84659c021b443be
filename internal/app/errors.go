package app

import "errors"

var (
	ErrNoActivePlan      = errors.New("no active plan")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("action not available in the current view")
	ErrNotSignedIn       = errors.New("not signed in")
	ErrAuthentication    = errors.New("authentication failed")
)

// User-facing notices.
const (
	noticeNoActivePlan     = "Selecione ou crie um treino primeiro!"
	noticeGenerationFailed = "Não foi possível gerar o treino. Tente novamente."
	noticeAlternatives     = "Erro ao buscar alternativas via IA."
	noticeAuthentication   = "Não foi possível entrar. Verifique suas credenciais."
)
