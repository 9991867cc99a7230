package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// PrintWarning is the default warning handler.
func PrintWarning(w Warning) {
	FprintWarning(os.Stderr, w)
}

func FprintWarning(out io.Writer, w Warning) {
	color.New(color.FgYellow).Fprintf(out, "[WARN] %s: %s\n", location(w.Pos), w.Msg)
}

// Display writes err to w. Positioned errors get the offending source line
// and a caret under the failing column.
func Display(w io.Writer, src string, err error) {
	red := color.New(color.FgRed)

	var de *Error
	if !errors.As(err, &de) {
		red.Fprintf(w, "Error: %s\n", err)
		return
	}

	red.Fprintf(w, "%s\n", de.Error())

	lines := strings.Split(src, "\n")
	if de.Pos.Line < 1 || de.Pos.Line > len(lines) {
		return
	}
	line := strings.TrimRight(lines[de.Pos.Line-1], "\r")
	prefix := fmt.Sprintf("%4d | ", de.Pos.Line)
	fmt.Fprintf(w, "%s%s\n", prefix, line)

	col := de.Pos.Column
	if col < 1 {
		col = 1
	}
	pad := strings.Repeat(" ", len(prefix))
	// tabs keep their width so the caret lines up
	for i, r := range []rune(line) {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			pad += "\t"
		} else {
			pad += " "
		}
	}
	red.Fprintf(w, "%s^\n", pad)
}
