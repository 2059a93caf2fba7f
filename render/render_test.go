package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/sheikhrachel/gol-engine/model"
)

func TestCellRect(t *testing.T) {
	got := CellRect(model.NewCell(3, 4, model.Alive), 60, 30)
	want := Rect{X: 180, Y: 120, W: 60, H: 30}
	if got != want {
		t.Errorf("CellRect = %+v, want %+v", got, want)
	}
}

func TestPaletteFill(t *testing.T) {
	if DefaultPalette.Fill(model.Dead) != color.White {
		t.Error("dead cells should be light")
	}
	if DefaultPalette.Fill(model.Alive) != color.Black {
		t.Error("live cells should be dark")
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	w, err := model.NewWorld(3, 2, model.AllDead())
	if err != nil {
		t.Fatal(err)
	}
	w.SetCell(0, 0, model.Alive)
	w.SetCell(2, 1, model.Alive)

	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	if err := r.Display(w); err != nil {
		t.Fatal(err)
	}

	want := "██    \n    ██\n"
	if out.String() != want {
		t.Errorf("Display() = %q, want %q", out.String(), want)
	}
}
