package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sheikhrachel/gol-engine/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws a world as text, two characters per cell
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the world row by row
func (r *TerminalRenderer) Display(w *model.World) error {
	width, _ := w.Dimensions()
	buf := bufio.NewWriter(r.out())

	for c := range w.All() {
		if c.IsAlive() {
			buf.WriteString(gridPosBlock)
		} else {
			buf.WriteString(gridPosEmpty)
		}
		if uint32(c.X()) == width-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
