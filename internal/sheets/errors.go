package sheets

import "errors"

var (
	ErrCredenciais   = errors.New("credenciais da planilha ausentes ou inválidas")
	ErrNaoEncontrada = errors.New("documento ou aba da planilha não encontrados")
	ErrTransporte    = errors.New("falha na comunicação com o Google Sheets")
)
