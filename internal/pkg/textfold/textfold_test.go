package textfold

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Aït Saïd", "ait said"},
		{"EL AMRANI", "el amrani"},
		{"Benjelloun", "benjelloun"},
		{"Férnandez João", "fernandez joao"},
		{"", ""},
		{"123", "123"},
	}
	for _, c := range cases {
		if got := Fold(c.input); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
