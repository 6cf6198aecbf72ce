package utils

import "testing"

func TestSlugDisciplina(t *testing.T) {
	tests := []struct {
		name       string
		disciplina string
		expected   string
	}{
		{
			name:       "disciplina com acento",
			disciplina: "LÍNGUA PORTUGUESA",
			expected:   "lingua-portuguesa",
		},
		{
			name:       "sigla",
			disciplina: "RLM",
			expected:   "rlm",
		},
		{
			name:       "nome composto com acento",
			disciplina: "REALIDADE DE GOIÁS",
			expected:   "realidade-de-goias",
		},
		{
			name:       "cedilha",
			disciplina: "LEGISLAÇÃO APLICADA",
			expected:   "legislacao-aplicada",
		},
		{
			name:       "específicos",
			disciplina: "CONHECIMENTOS ESPECÍFICOS",
			expected:   "conhecimentos-especificos",
		},
		{
			name:       "vazio",
			disciplina: "",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlugDisciplina(tt.disciplina); got != tt.expected {
				t.Errorf("SlugDisciplina(%q) = %q, esperado %q", tt.disciplina, got, tt.expected)
			}
		})
	}
}

func TestResolverDisciplina(t *testing.T) {
	validas := []string{"LÍNGUA PORTUGUESA", "RLM", "REALIDADE DE GOIÁS"}

	tests := []struct {
		name     string
		valor    string
		expected string
	}{
		{name: "nome exato", valor: "RLM", expected: "RLM"},
		{name: "slug", valor: "lingua-portuguesa", expected: "LÍNGUA PORTUGUESA"},
		{name: "slug com acento digitado", valor: "língua-portuguesa", expected: "LÍNGUA PORTUGUESA"},
		{name: "desconhecida passa adiante", valor: "INFORMÁTICA", expected: "INFORMÁTICA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolverDisciplina(tt.valor, validas); got != tt.expected {
				t.Errorf("ResolverDisciplina(%q) = %q, esperado %q", tt.valor, got, tt.expected)
			}
		})
	}
}
