package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func testTheme() *Theme {
	return NewTheme(ThemeConfig{NoColor: true})
}

// waitStopped fails the test when Stop does not return in time.
func waitStopped(t *testing.T, s Spinner) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Stop()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("spinner did not stop within 2 second timeout")
	}
}

func TestHeadlessSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := newHeadlessSpinner(testTheme(), "Creating directories", &buf)
	s.SetTitle("Creating directories")
	s.SetTitle("Writing files")
	s.Stop()
	s.SetTitle("ignored after stop")
	s.Stop()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "Creating directories") || !strings.HasSuffix(lines[1], "Writing files") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestProgressImpl_Spinner_HeadlessPaths(t *testing.T) {
	tests := []struct {
		name     string
		noColor  bool
		headless bool
	}{
		{"forced_headless", false, true},
		{"no_color", true, false},
		{"buffer_output", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hm := NewHeadlessManager()
			hm.ForceHeadless(tt.headless)

			var buf bytes.Buffer
			prog := NewProgress(NewTheme(ThemeConfig{NoColor: tt.noColor, Mode: "dark"}), hm, &buf)
			sp := prog.Spinner("Installing")
			if _, ok := sp.(*headlessSpinner); !ok {
				t.Fatalf("expected headless spinner, got %T", sp)
			}
			sp.Stop()
			if !strings.Contains(buf.String(), "Installing") {
				t.Errorf("title not printed: %q", buf.String())
			}
		})
	}
}

func TestInteractiveSpinner_SetTitleThenStop(t *testing.T) {
	s := newInteractiveSpinner(testTheme(), "Installing", io.Discard,
		tea.WithInput(strings.NewReader("")),
		tea.WithoutRenderer(),
	)
	// Allow the program goroutine to initialize before sending messages.
	time.Sleep(10 * time.Millisecond)
	s.SetTitle("Still installing")
	waitStopped(t, s)
	// Stop is idempotent.
	waitStopped(t, s)
}

func TestSpinnerModel_Update(t *testing.T) {
	m := newSpinnerModel(NewTheme(ThemeConfig{Mode: "dark"}), "Start")

	updated, _ := m.Update(spinnerTitleMsg("Next"))
	m = updated.(spinnerModel)
	if m.title != "Next" {
		t.Errorf("title = %q, want Next", m.title)
	}
	if !strings.Contains(m.View(), "Next") {
		t.Errorf("view should show title, got %q", m.View())
	}

	updated, cmd := m.Update(spinnerStopMsg{})
	m = updated.(spinnerModel)
	if !m.done || cmd == nil {
		t.Error("stop message should finish the model and quit")
	}
	if m.View() != "" {
		t.Errorf("finished view should be empty, got %q", m.View())
	}
}

func TestSpinnerModel_Update_SpinnerTickMsg(t *testing.T) {
	m := newSpinnerModel(NewTheme(ThemeConfig{Mode: "dark"}), "Ticking")
	tickCmd := m.Init()
	if tickCmd == nil {
		t.Fatal("Init should return a non-nil tick command")
	}
	msg := tickCmd()
	if _, ok := msg.(spinner.TickMsg); !ok {
		t.Skip("unexpected message type from tick command")
	}
	updated, _ := m.Update(msg)
	if updated.(spinnerModel).done {
		t.Error("tick should not stop the spinner")
	}
}

func TestHeadlessManager(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless should report headless")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive should not report headless")
	}
	hm.ClearForce()
	if hm.forced != nil {
		t.Error("ClearForce should remove the override")
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	if IsTerminal(io.Discard) {
		t.Error("io.Discard is not a terminal")
	}
}

func TestNewTheme(t *testing.T) {
	light := NewTheme(ThemeConfig{Mode: "light"})
	if light.Colors.Primary != lightColors.Primary {
		t.Errorf("light primary = %q", light.Colors.Primary)
	}
	dark := NewTheme(ThemeConfig{})
	if dark.Colors.Primary != darkColors.Primary {
		t.Errorf("default primary = %q", dark.Colors.Primary)
	}
	plain := NewTheme(ThemeConfig{NoColor: true})
	if got := plain.Success.Render("ok"); got != "ok" {
		t.Errorf("no-color style should render plain text, got %q", got)
	}
}

func TestAdaptivePalette(t *testing.T) {
	dark := NewTheme(ThemeConfig{Mode: "dark"}).Colors
	light := NewTheme(ThemeConfig{Mode: "light"}).Colors
	p := AdaptivePalette()

	pairs := []struct {
		role        string
		got         [2]string
		dark, light string
	}{
		{"primary", [2]string{p.Primary.Dark, p.Primary.Light}, dark.Primary, light.Primary},
		{"success", [2]string{p.Success.Dark, p.Success.Light}, dark.Success, light.Success},
		{"error", [2]string{p.Error.Dark, p.Error.Light}, dark.Error, light.Error},
		{"border", [2]string{p.Border.Dark, p.Border.Light}, dark.Border, light.Border},
		{"surface", [2]string{p.Surface.Dark, p.Surface.Light}, dark.Surface, light.Surface},
	}
	for _, pr := range pairs {
		if pr.got != [2]string{pr.dark, pr.light} {
			t.Errorf("%s = %v, want dark %s light %s", pr.role, pr.got, pr.dark, pr.light)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("## Next steps\n\n- cd demo\n- npm run dev\n", testTheme())
	for _, want := range []string{"Next steps", "cd demo", "npm run dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered markdown missing %q:\n%s", want, out)
		}
	}
}
