package utils

import "testing"

func TestLimparConteudo(t *testing.T) {
	tests := []struct {
		name     string
		texto    string
		expected string
	}{
		{
			name:     "texto plano passa direto",
			texto:    "Regra de três simples e composta",
			expected: "Regra de três simples e composta",
		},
		{
			name:     "negrito e itálico",
			texto:    "**Crase** diante de _pronomes_",
			expected: "Crase diante de pronomes",
		},
		{
			name:     "link vira só o texto",
			texto:    "Ver [Lei Orgânica](https://example.com)",
			expected: "Ver Lei Orgânica",
		},
		{
			name:     "código inline",
			texto:    "Função `PROCV` na planilha",
			expected: "Função PROCV na planilha",
		},
		{
			name:     "quebras de linha viram espaço",
			texto:    "Juros simples\ne compostos",
			expected: "Juros simples e compostos",
		},
		{
			name:     "vazio",
			texto:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LimparConteudo(tt.texto); got != tt.expected {
				t.Errorf("LimparConteudo(%q) = %q, esperado %q", tt.texto, got, tt.expected)
			}
		})
	}
}
