package country

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "countries.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVResolverLookup(t *testing.T) {
	path := writeTable(t, "ISO3166-1-Alpha-3,official_name_cn,other\nCHN,中国,x\nJPN,日本,y\n,empty,z\n")
	r := NewCSVResolver(path)

	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{"CHN", "中国", true},
		{"chn", "中国", true},
		{" JPN ", "日本", true},
		{"XXX", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := r.NameCN(tt.code)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NameCN(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err = %v, want nil", err)
	}
}

func TestCSVResolverMissingFile(t *testing.T) {
	r := NewCSVResolver(filepath.Join(t.TempDir(), "absent.csv"))
	if _, ok := r.NameCN("CHN"); ok {
		t.Fatal("lookup against missing file returned ok")
	}
	if err := r.Err(); err == nil {
		t.Fatal("Err = nil, want load error")
	}
}

func TestCSVResolverMissingColumns(t *testing.T) {
	path := writeTable(t, "code,name\nCHN,中国\n")
	r := NewCSVResolver(path)
	if _, ok := r.NameCN("CHN"); ok {
		t.Fatal("lookup with wrong header returned ok")
	}
	if err := r.Err(); err == nil {
		t.Fatal("Err = nil, want header error")
	}
}

func TestChainFallsThrough(t *testing.T) {
	primary := StaticResolver{"CHN": "中国"}
	fallback := StaticResolver{"JPN": "日本"}
	c := Chain{primary, fallback}

	if name, ok := c.NameCN("JPN"); !ok || name != "日本" {
		t.Errorf("NameCN(JPN) = (%q, %v), want (日本, true)", name, ok)
	}
	if _, ok := c.NameCN("ZZZ"); ok {
		t.Error("unknown code resolved through chain")
	}
}

func TestDefaultResolverCoversGreaterChina(t *testing.T) {
	r := DefaultResolver()
	for code, want := range map[string]string{"CHN": "中国", "HKG": "香港", "MAC": "澳门", "TWN": "台湾"} {
		if got, ok := r.NameCN(code); !ok || got != want {
			t.Errorf("NameCN(%s) = (%q, %v), want (%q, true)", code, got, ok, want)
		}
	}
}
