package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

func TestNewThemeModes(t *testing.T) {
	r := lipgloss.NewRenderer(os.Stdout)

	if th := NewTheme(r, ThemeDark); !th.IsDark() {
		t.Error("dark mode should select the dark palette")
	}
	if th := NewTheme(r, ThemeLight); th.IsDark() {
		t.Error("light mode should select the light palette")
	}
	before := r.HasDarkBackground()
	if th := NewTheme(r, ThemeAuto); th.IsDark() != before {
		t.Error("auto should keep the renderer's detection")
	}
}

func TestThemeToggled(t *testing.T) {
	th := TestTheme()
	light := th.Toggled()
	if light.IsDark() {
		t.Fatal("toggling dark should give light")
	}
	if !light.Toggled().IsDark() {
		t.Fatal("toggling twice should give dark")
	}
}

func TestThemeColorsSet(t *testing.T) {
	th := TestTheme()
	for name, c := range map[string]lipgloss.AdaptiveColor{
		"Primary":  th.Primary,
		"WhiteKey": th.WhiteKey,
		"SharpKey": th.SharpKey,
		"Pressed":  th.Pressed,
	} {
		if c.Light == "" || c.Dark == "" {
			t.Errorf("%s color is empty", name)
		}
	}
}

func TestPickFollowsBackground(t *testing.T) {
	th := TestTheme()
	if got := pick(th, th.WhiteKey); got != th.WhiteKey.Dark {
		t.Errorf("dark pick = %q", got)
	}
	light := th.Toggled()
	if got := pick(light, light.WhiteKey); got != light.WhiteKey.Light {
		t.Errorf("light pick = %q", got)
	}
}

func TestThemeBgAndFgByProfile(t *testing.T) {
	orig := TermProfile
	t.Cleanup(func() { TermProfile = orig })

	TermProfile = colorprofile.ANSI
	if _, ok := ThemeBg("#FFFFFF").(lipgloss.NoColor); !ok {
		t.Error("ThemeBg should drop backgrounds below truecolor")
	}
	if got := ThemeFg("#FFFFFF"); got != lipgloss.ANSIColor(7) {
		t.Errorf("ThemeFg on 16 colors = %v", got)
	}

	TermProfile = colorprofile.TrueColor
	if got := ThemeBg("#123456"); got != lipgloss.Color("#123456") {
		t.Errorf("ThemeBg on truecolor = %v", got)
	}
}

func TestKeyStyleLabelColorByProfile(t *testing.T) {
	orig := TermProfile
	t.Cleanup(func() { TermProfile = orig })
	th := TestTheme()

	// Key backgrounds are dropped on 16 colors, so labels fall back to white.
	TermProfile = colorprofile.ANSI
	if got := th.KeyStyle(false, false).GetForeground(); got != lipgloss.ANSIColor(7) {
		t.Errorf("16-color label = %v", got)
	}

	TermProfile = colorprofile.TrueColor
	if got := th.KeyStyle(true, false).GetForeground(); got != lipgloss.Color(th.SharpText.Dark) {
		t.Errorf("truecolor sharp label = %v", got)
	}
}

func TestKeyStyleDimensions(t *testing.T) {
	th := TestTheme()
	for _, sharp := range []bool{false, true} {
		for _, pressed := range []bool{false, true} {
			out := th.KeyStyle(sharp, pressed).Width(8).Height(7).Render("C")
			if w, h := lipgloss.Width(out), lipgloss.Height(out); w != 10 || h != 9 {
				t.Errorf("sharp=%v pressed=%v: got %dx%d, want 10x9", sharp, pressed, w, h)
			}
		}
	}
}
