package normalize

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Equações Diferenciais Parciais e Séries (EDPS)", "EQUACOES DIFERENCIAIS PARCIAIS E SERIES"},
		{"Administração de Banco de Dados", "ADMINISTRACAO DE BANCO DE DADOS"},
		{"Cálculo   a Várias\tVariáveis", "CALCULO A VARIAS VARIAVEIS"},
		{"  física  ", "FISICA"},
		{"(ABC) Tudo Removido", ""},
		{"ÁÉÍÓÚÂÊÔÃÕÀÇáéíóúâêôãõàç", "AEIOUAEOAOACAEIOUAEOAOAC"},
		{"", ""},
		{"JA NORMALIZADO", "JA NORMALIZADO"},
	}

	for _, tc := range testCases {
		result := Clean(tc.input)
		if result != tc.expected {
			t.Errorf("Clean(%q) = %q, want %q", tc.input, result, tc.expected)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Equações Diferenciais Parciais e Séries (EDPS)",
		"MAR - CURSO  DE BACHARELADO EM CIÊNCIA DA COMPUTAÇÃO",
		"",
		"ALGEBRA LINEAR",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanAll(t *testing.T) {
	got := CleanAll([]string{"Cálculo I", "Física (FIS)", ""})
	want := []string{"CALCULO I", "FISICA", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanAll = %v, want %v", got, want)
	}

	if got := CleanAll(nil); len(got) != 0 {
		t.Errorf("CleanAll(nil) = %v, want empty", got)
	}
}
