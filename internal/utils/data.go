package utils

import (
	"fmt"
	"time"
)

// mesesPorExtenso segue a forma longa usada no cabeçalho do painel
var mesesPorExtenso = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// FormatarDataLonga formata a data na forma longa em português.
// Exemplo: "14 de Março de 2024"
func FormatarDataLonga(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), mesesPorExtenso[t.Month()-1], t.Year())
}
