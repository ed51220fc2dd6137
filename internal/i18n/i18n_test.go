package i18n

import "testing"

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"english", English, "clipboard.copied", "Copied!"},
		{"chinese", Chinese, "clipboard.copied", "已复制！"},
		{"unknown language falls back", "fr", "clipboard.copied", "Copied!"},
		{"unknown key returns key", English, "nope.missing", "nope.missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range translations[English] {
		if _, ok := translations[Chinese][key]; !ok {
			t.Errorf("zh is missing %q", key)
		}
	}
	for key := range translations[Chinese] {
		if _, ok := translations[English][key]; !ok {
			t.Errorf("en is missing %q", key)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		configured string
		env        string
		want       string
	}{
		{"zh", "en_US.UTF-8", Chinese},
		{"", "zh_CN.UTF-8", Chinese},
		{"", "zh", Chinese},
		{"fr", "de_DE.UTF-8", English},
		{"", "", English},
	}

	for _, tt := range tests {
		t.Run(tt.configured+"/"+tt.env, func(t *testing.T) {
			t.Setenv("LANG", tt.env)
			if got := Detect(tt.configured); got != tt.want {
				t.Errorf("Detect(%q) with LANG=%q = %q, want %q", tt.configured, tt.env, got, tt.want)
			}
		})
	}
}
