package timefmt

import (
	"slices"
	"sync"
	"testing"

	"github.com/jparise/gh-chrono/internal/timeunit"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    map[timeunit.Unit]Placeholder
	}{
		{
			name:    "clock",
			pattern: "%00h%:%00m%:%00s%",
			want: map[timeunit.Unit]Placeholder{
				timeunit.Hours:   {Alias: "h", Pad: "00", ShowIfZero: true},
				timeunit.Minutes: {Alias: "m", Pad: "00", ShowIfZero: true},
				timeunit.Seconds: {Alias: "s", Pad: "00", ShowIfZero: true},
			},
		},
		{
			name:    "hide if zero",
			pattern: "%*00h%",
			want: map[timeunit.Unit]Placeholder{
				timeunit.Hours: {Alias: "h", Pad: "*00", ShowIfZero: false},
			},
		},
		{
			name:    "alias keeps surrounding spaces",
			pattern: "%0 days%",
			want: map[timeunit.Unit]Placeholder{
				timeunit.Days: {Alias: " days", Pad: "0", ShowIfZero: true},
			},
		},
		{
			name:    "case insensitive alias",
			pattern: "%#Min%",
			want: map[timeunit.Unit]Placeholder{
				timeunit.Minutes: {Alias: "Min", Pad: "#", ShowIfZero: true},
			},
		},
		{
			name:    "unknown unit dropped",
			pattern: "%00x% %00s%",
			want: map[timeunit.Unit]Placeholder{
				timeunit.Seconds: {Alias: "s", Pad: "00", ShowIfZero: true},
			},
		},
		{
			name:    "unterminated placeholder dropped",
			pattern: "%00s% and %00h",
			want: map[timeunit.Unit]Placeholder{
				timeunit.Seconds: {Alias: "s", Pad: "00", ShowIfZero: true},
			},
		},
		{
			name:    "later placeholder wins",
			pattern: "%0h% %000hour%",
			want: map[timeunit.Unit]Placeholder{
				timeunit.Hours: {Alias: "hour", Pad: "000", ShowIfZero: true},
			},
		},
		{
			name:    "empty placeholder",
			pattern: "100%% done",
			want:    map[timeunit.Unit]Placeholder{},
		},
		{
			name:    "no placeholders",
			pattern: "plain text",
			want:    map[timeunit.Unit]Placeholder{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := Compile(tt.pattern)
			if tmpl.Pattern() != tt.pattern {
				t.Errorf("Pattern() = %q, want %q", tmpl.Pattern(), tt.pattern)
			}
			if len(tmpl.placeholders) != len(tt.want) {
				t.Fatalf("Compile(%q) has %d placeholders, want %d: %+v",
					tt.pattern, len(tmpl.placeholders), len(tt.want), tmpl.placeholders)
			}
			for unit, want := range tt.want {
				got, ok := tmpl.Placeholder(unit)
				if !ok {
					t.Errorf("Compile(%q) missing placeholder for %v", tt.pattern, unit)
					continue
				}
				if got != want {
					t.Errorf("Compile(%q)[%v] = %+v, want %+v", tt.pattern, unit, got, want)
				}
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		ms      int64
		want    string
	}{
		{"clock", "%00h%:%00m%:%00s%", 9_030_000, "02h:30m:30s"},
		{"clock zero", "%00h%:%00m%:%00s%", 0, "00h:00m:00s"},
		{"hidden zero hours", "%*00h%:%00m%", 90_000, ":01m"},
		{"hidden non-zero hours", "%*00h%:%00m%", 3_690_000, "01h:01m"},
		{"hours not clamped", "%0h%", 50 * 3_600_000, "50h"},
		{"wider than pad", "%00d%", 123 * 86_400_000, "123d"},
		{"hash pad", "%#s%", 0, "0s"},
		{"no pad", "%s%", 5_000, "5s"},
		{"alias suffix as written", "%0 Hours%", 7_200_000, "2 Hours"},
		{"unknown unit left literal", "%0x% %0s%", 1_000, "%0x% 1s"},
		{"repeated placeholder", "%0s%/%0s%", 3_000, "3s/3s"},
		{"weeks use average", "%0w% %0d%", 657_000_000 + 86_400_000, "1w 1d"},
		{"months and years", "%0y% %0mo%", 31_536_000_000 + 2_628_000_000, "1y 1mo"},
		{"ticks and millis", "%0t% %000ms%", 1_234, "24t 034ms"},
		{"pad chars after alias never match", "%h0%", 3_600_000, "%h0%"},
		{"negative", "%00m%:%00s%", -90_000, "-01m:30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(tt.pattern).Format(tt.ms)
			if got != tt.want {
				t.Errorf("Compile(%q).Format(%d) = %q, want %q", tt.pattern, tt.ms, got, tt.want)
			}
		})
	}
}

func TestFormatDecomposition(t *testing.T) {
	tmpl := Compile("%0y%|%0mo%|%0w%|%0d%|%0h%|%0m%|%0s%|%0t%|%0ms%")
	units := tmpl.Units()
	if !slices.Equal(units, timeunit.Ordered(true)) {
		t.Fatalf("Units() = %v, want every unit", units)
	}

	for _, ms := range []int64{0, 1, 49, 50, 999, 1_000, 59_999, 86_399_999, 657_000_001, 40_000_000_000, 123_456_789_012} {
		got := tmpl.Format(ms)
		parts := splitInts(t, got)
		var sum int64
		for i, unit := range units {
			sum += parts[i] * unit.Millis()
		}
		if sum != ms {
			t.Errorf("Format(%d) = %q reconstructs to %d", ms, got, sum)
		}
	}
}

// splitInts parses "1y|2mo|..." into its leading integers.
func splitInts(t *testing.T, s string) []int64 {
	t.Helper()
	var out []int64
	var n int64
	inNumber := false
	for _, c := range s + "|" {
		switch {
		case c >= '0' && c <= '9':
			if !inNumber {
				n = 0
				inNumber = true
			}
			n = n*10 + int64(c-'0')
		case c == '|':
			out = append(out, n)
			inNumber = false
		default:
			inNumber = false
		}
	}
	return out
}

func TestWithPattern(t *testing.T) {
	orig := Compile("%0h%")
	replaced := orig.WithPattern("%0m%")

	if got := orig.Format(3_600_000); got != "1h" {
		t.Errorf("original Format() = %q, want %q", got, "1h")
	}
	if got := replaced.Format(3_600_000); got != "60m" {
		t.Errorf("replaced Format() = %q, want %q", got, "60m")
	}
	if _, ok := replaced.Placeholder(timeunit.Hours); ok {
		t.Error("replaced template kept the hours placeholder")
	}
}

func TestFormatter(t *testing.T) {
	f := NewFormatter("%0s%")
	if got := f.Format(2_000); got != "2s" {
		t.Errorf("Format() = %q, want %q", got, "2s")
	}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				f.SetPattern("%000ms%")
				return
			}
			got := f.Format(2_000)
			if got != "2s" && got != "2000ms" {
				t.Errorf("Format() = %q during swap", got)
			}
		}()
	}
	wg.Wait()

	if got := f.Template().Pattern(); got != "%000ms%" {
		t.Errorf("Template().Pattern() = %q, want %q", got, "%000ms%")
	}
}
