package youtube

import "testing"

func TestFormatDuration(t *testing.T) {
	// The conversion is a literal character substitution, so tokens
	// missing an H or S segment keep their partial shape.
	tests := []struct {
		name string
		iso  string
		want string
	}{
		{"hours minutes seconds", "PT1H2M10S", "1:2:10"},
		{"minutes seconds", "PT4M13S", "4:13"},
		{"minutes only", "PT5M", "5:"},
		{"seconds only", "PT45S", "45"},
		{"hours seconds", "PT1H5S", "1:5"},
		{"hours only", "PT2H", "2:"},
		{"empty", "", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.iso); got != tt.want {
				t.Errorf("FormatDuration(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rfc3339", "2022-03-15T10:30:00Z", "2022-03-15 10:30:00"},
		{"empty", "", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeTimestamp(tt.in); got != tt.want {
				t.Errorf("normalizeTimestamp(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompactDate(t *testing.T) {
	if got := compactDate("2017-01-05T11:22:33Z"); got != "20170105" {
		t.Errorf("compactDate() = %q, want %q", got, "20170105")
	}
	if got := compactDate(""); got != "N/A" {
		t.Errorf("compactDate(\"\") = %q, want N/A", got)
	}
}
