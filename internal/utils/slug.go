package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var reNaoAlfanumerico = regexp.MustCompile(`[^a-z0-9]+`)

// SlugDisciplina converte o nome de uma disciplina para o formato usado no
// parâmetro de filtro da URL.
// Exemplo: "LÍNGUA PORTUGUESA" -> "lingua-portuguesa"
func SlugDisciplina(disciplina string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalizada, _, _ := transform.String(t, disciplina)
	normalizada = strings.ToLower(normalizada)

	slug := reNaoAlfanumerico.ReplaceAllString(normalizada, "-")
	return strings.Trim(slug, "-")
}

// ResolverDisciplina aceita o nome exato ou o slug de uma disciplina e
// devolve o nome original dentre as válidas. Sem correspondência, devolve o
// valor recebido (disciplinas desconhecidas entram nos agregados normalmente).
func ResolverDisciplina(valor string, validas []string) string {
	for _, disciplina := range validas {
		if disciplina == valor || SlugDisciplina(disciplina) == SlugDisciplina(valor) {
			return disciplina
		}
	}
	return valor
}
