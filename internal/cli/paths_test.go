package cli

import "testing"

func TestDeriveOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ext   string
		want  string
	}{
		{"Pure", "app.graph.json", ".pure.graph.json", "app.pure.graph.json"},
		{"SCCPure", "app.graph.json", ".sccpure.graph.json", "app.sccpure.graph.json"},
		{"Dot", "deps/app.graph.json", ".dot", "deps/app.dot"},
		{"CSV", "app.graph.json", ".nodes.csv", "app.nodes.csv"},
		{"NonConventional", "app.json", ".dot", "app.json.dot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveOutput(tt.input, tt.ext); got != tt.want {
				t.Errorf("deriveOutput(%q, %q) = %q, want %q", tt.input, tt.ext, got, tt.want)
			}
		})
	}
}

func TestOutputOr(t *testing.T) {
	if got := outputOr("explicit.json", "app.graph.json", ".dot"); got != "explicit.json" {
		t.Errorf("explicit output should win, got %q", got)
	}
	if got := outputOr("", "app.graph.json", ".dot"); got != "app.dot" {
		t.Errorf("derived output = %q, want app.dot", got)
	}
}
