package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rahardian/soalgen/internal/screen"
)

type stubScreen struct {
	title    string
	inited   bool
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.title }
func (s *stubScreen) Title() string                 { return s.title }

type testMsg struct{}

func TestPushPop(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	r := New(first)

	if r.Depth() != 1 || r.Active() != screen.Screen(first) {
		t.Fatal("initial stack wrong")
	}

	r.Update(PushScreenMsg{Screen: second})
	if r.Depth() != 2 || r.Active().Title() != "second" {
		t.Fatal("push did not activate second screen")
	}
	if !second.inited {
		t.Error("pushed screen should be initialized")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "first" {
		t.Fatal("pop did not restore first screen")
	}
}

func TestPop_NeverEmptiesStack(t *testing.T) {
	r := New(&stubScreen{title: "only"})
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Error("popping the last screen should be a no-op")
	}
}

func TestUpdate_ForwardsToActiveOnly(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	r := New(first)
	r.Push(second)

	r.Update(testMsg{})
	if len(second.received) != 1 {
		t.Error("active screen should receive the message")
	}
	if len(first.received) != 0 {
		t.Error("inactive screen should not receive messages")
	}
}

func TestView_RendersActive(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})
	if got := r.View(80, 24); got != "second" {
		t.Errorf("expected active screen view, got %q", got)
	}
}
