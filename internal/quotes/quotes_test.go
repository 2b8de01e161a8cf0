package quotes

import "testing"

func TestRandomReturnsKnownQuote(t *testing.T) {
	for i := 0; i < 50; i++ {
		q := Random()
		found := false
		for _, known := range All {
			if known == q {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Random returned unknown quote: %+v", q)
		}
		if q.Content == "" || q.Source == "" {
			t.Fatalf("incomplete quote: %+v", q)
		}
	}
}

func TestTitlePerType(t *testing.T) {
	tests := []struct {
		quoteType string
		want      string
	}{
		{"hadis", "📖 Günün Hadisi"},
		{"ayet", "🕌 Günün Ayeti"},
		{"dua", "🤲 Günün Duası"},
		{"unknown", "📝 Günün Mesajı"},
	}
	for _, tt := range tests {
		if got := Title(Quote{Type: tt.quoteType}); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.quoteType, got, tt.want)
		}
	}
}
