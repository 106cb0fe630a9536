package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog(BaseLocale)
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if got := GetCatalog("missing-locale"); got != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if got := GetCatalog(""); got != base {
		t.Fatal("expected empty locale to resolve to en-US")
	}
}

func TestGetCatalogNegotiatesAcceptLanguage(t *testing.T) {
	got := GetCatalog("pt;q=0.9, fr;q=0.5")
	if got.Locale() != "pt-BR" {
		t.Fatalf("locale = %q, want %q", got.Locale(), "pt-BR")
	}
}

func TestMatchLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "en", want: "en-US"},
		{in: "pt-BR", want: "pt-BR"},
		{in: "ja", want: BaseLocale},
		{in: "%%%", want: BaseLocale},
	}
	for _, tt := range tests {
		if got := MatchLocale(tt.in); got != tt.want {
			t.Fatalf("MatchLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range enUS {
		if _, ok := ptBR[code]; !ok {
			t.Fatalf("pt-BR catalog missing %s", code)
		}
	}
	if len(enUS) != len(ptBR) {
		t.Fatalf("catalog sizes differ: en-US %d, pt-BR %d", len(enUS), len(ptBR))
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
	if got := cat.Format("code", map[string]string{"Name": "Kai"}); got != "hello Kai" {
		t.Fatalf("format = %q, want %q", got, "hello Kai")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
