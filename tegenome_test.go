package tegenome

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "empty"},
		{KindActive, "active"},
		{KindDisabled, "disabled"},
		{Kind(42), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindGlyph(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "-"},
		{KindActive, "A"},
		{KindDisabled, "x"},
	}

	for _, tt := range tests {
		if got := tt.kind.glyph(); got != tt.want {
			t.Errorf("Kind %v glyph = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// TestBackendsImplementGenome drives both backends through the full
// operation set behind the shared interface, so the contract surface
// itself is exercised rather than just asserted at compile time.
func TestBackendsImplementGenome(t *testing.T) {
	backends := []struct {
		name string
		make func() (Genome, error)
	}{
		{"ring", func() (Genome, error) { return New(10) }},
		{"array", func() (Genome, error) { return NewArray(10) }},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g, err := b.make()
			if err != nil {
				t.Fatalf("constructor failed: %v", err)
			}

			te, err := g.InsertTE(3, 2)
			if err != nil {
				t.Fatalf("InsertTE failed: %v", err)
			}
			if _, err := g.CopyTE(te, 5); err != nil {
				t.Fatalf("CopyTE failed: %v", err)
			}
			g.DisableTE(te)

			if got := g.Length(); got != 14 {
				t.Errorf("Length() = %d, want 14", got)
			}
			if got := g.ActiveTEs(); len(got) != 1 {
				t.Errorf("ActiveTEs() = %v, want one id", got)
			}
			if got := g.Render(); len(got) != 14 {
				t.Errorf("len(Render()) = %d, want 14", len(got))
			}
		})
	}
}
