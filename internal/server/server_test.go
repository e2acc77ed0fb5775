package server

import (
	"io"
	"testing"

	"github.com/Gaurav-Gosain/folios/internal/app"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/content"
	"github.com/charmbracelet/log"
)

func TestDesktopsAreIndependent(t *testing.T) {
	cache, err := content.NewCache(8)
	if err != nil {
		t.Fatal(err)
	}
	f := &Desktops{
		Config:  config.DefaultConfig(),
		Profile: content.DefaultProfile(),
		Cache:   cache,
		Logger:  log.New(io.Discard),
	}

	m1, opts := f.New("ssh:alice@127.0.0.1", 100, 30)
	// frame rate and the motion filter
	if len(opts) != 2 {
		t.Errorf("program options = %d, want 2", len(opts))
	}
	m2, _ := f.New("web", 80, 24)

	a, ok := m1.(*app.Desktop)
	if !ok {
		t.Fatalf("model is %T, want *app.Desktop", m1)
	}
	b := m2.(*app.Desktop)

	if a.Width != 100 || a.Height != 30 {
		t.Errorf("size = %dx%d, want 100x30", a.Width, a.Height)
	}

	a.ToggleRain()
	if a.RainEnabled() == b.RainEnabled() {
		t.Error("toggling rain in one session changed another")
	}
	if !f.Config.Desktop.CodeRain {
		t.Error("session toggle changed the server configuration")
	}

	a.Open(content.TitleProjects)
	if b.WM.Len() != 0 {
		t.Error("window opened in one session appeared in another")
	}
}
