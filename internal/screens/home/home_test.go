package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nasywa/karsa/internal/chat"
	"github.com/nasywa/karsa/internal/router"
	"github.com/nasywa/karsa/internal/screen"
)

func TestHome_MenuEntries(t *testing.T) {
	h := New(chat.New(nil))
	view := h.View(100, 30)

	for _, label := range []string{"Materi Pembelajaran", "Uji Pemahaman", "Tanya Karsa", "Keluar"} {
		if !strings.Contains(view, label) {
			t.Errorf("menu missing %q", label)
		}
	}
}

func TestHome_EnterOpensMaterials(t *testing.T) {
	h := New(chat.New(nil))

	var scr screen.Screen = h
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Materi Pembelajaran" {
		t.Errorf("pushed %q, want materials screen", push.Screen.Title())
	}
}

func TestHome_ChatSharesAssistant(t *testing.T) {
	assistant := chat.New(nil)
	h := New(assistant)

	var scr screen.Screen = h
	scr, _ = scr.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	scr, _ = scr.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Tanya Karsa" {
		t.Errorf("pushed %q, want chat screen", push.Screen.Title())
	}
}

func TestHome_ShowsCredit(t *testing.T) {
	h := New(chat.New(nil))
	if !strings.Contains(h.View(100, 30), "Nasywa Aura Adiba") {
		t.Error("credit line missing")
	}
}
