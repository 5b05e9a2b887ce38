package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/hanoi/internal/domain"
)

const (
	columnWidth = 7
	columnGap   = "   "
)

// Board draws the pegs as upright columns, top row first, with "-" for empty
// slots and a "[- 1 -]" base under each peg.
func Board(b *domain.Board) string {
	var sb strings.Builder
	for level := b.Disks - 1; level >= 0; level-- {
		cells := make([]string, 0, len(b.Pegs))
		for _, p := range b.Pegs {
			cell := Styles.Muted.Render("-")
			if level < len(p.Disks) {
				cell = Styles.Disk.Render(strconv.Itoa(int(p.Disks[level])))
			}
			cells = append(cells, lipgloss.PlaceHorizontal(columnWidth, lipgloss.Center, cell))
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, columnGap), " "))
		sb.WriteByte('\n')
	}
	bases := make([]string, 0, len(b.Pegs))
	for _, p := range b.Pegs {
		bases = append(bases, Styles.Base.Render("[- "+string(p.Label)+" -]"))
	}
	sb.WriteString(strings.Join(bases, columnGap))
	return sb.String()
}
