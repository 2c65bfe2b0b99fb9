package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	mycolor "github.com/apxxxxxxe/contrast/color"
	"github.com/apxxxxxxe/contrast/matrix"
	"github.com/apxxxxxxe/contrast/palette"
)

// Tui is the interactive ratio browser: a table of numeric ratios with the
// selected pair described below it.
type Tui struct {
	App     *tview.Application
	Table   *tview.Table
	Info    *tview.TextView
	Help    *tview.TextView
	Entries []palette.Entry
	Matrix  *matrix.Matrix
	Summary string
}

func (tui *Tui) Notify(text string) {
	tui.Info.SetText(text)
}

func (tui *Tui) UpdateHelp(text string) {
	tui.Help.SetText(text)
}

// Describe is the info line for column color x measured against row color y.
func (tui *Tui) Describe(x, y int) string {
	fg, bg := tui.Entries[x], tui.Entries[y]
	ratio := tui.Matrix.Ratio(x, y)
	return fmt.Sprintf("%s %s on %s %s: %.2f:1 (%s)",
		fg.Label(), fg.Hex(), bg.Label(), bg.Hex(), ratio, mycolor.LevelOf(ratio))
}

func (tui *Tui) loadCells() {
	table := tui.Table.Clear()
	table.SetCell(0, 0, tview.NewTableCell("").SetSelectable(false))

	for i, e := range tui.Entries {
		c := mycolor.Tcell(e.RGB())
		table.SetCell(0, i+1, tview.NewTableCell(e.Label()).
			SetTextColor(c).
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
		table.SetCell(i+1, 0, tview.NewTableCell(e.Label()).
			SetTextColor(c).
			SetSelectable(false))
	}

	for y, bg := range tui.Entries {
		bgColor := mycolor.Tcell(bg.RGB())
		for x, fg := range tui.Entries {
			table.SetCell(y+1, x+1, tview.NewTableCell(fmt.Sprintf(" %5.2f ", tui.Matrix.Ratio(x, y))).
				SetTextColor(mycolor.Tcell(fg.RGB())).
				SetBackgroundColor(bgColor).
				SetAlign(tview.AlignCenter))
		}
	}
}

func (tui *Tui) selectCell(row, column int) {
	if row < 1 || column < 1 {
		return
	}
	tui.Notify(tui.Summary + "\n" + tui.Describe(column-1, row-1))
}

func NewTui(entries []palette.Entry, m *matrix.Matrix) *Tui {
	table := tview.NewTable()
	table.SetTitle("Contrast").SetBorder(true).SetTitleAlign(tview.AlignLeft)
	table.SetFixed(1, 1).SetSelectable(true, true)

	infoWidget := tview.NewTextView()
	infoWidget.SetTitle("Info").SetBorder(true).SetTitleAlign(tview.AlignLeft)

	helpWidget := tview.NewTextView().SetTextAlign(tview.AlignCenter)

	tui := &Tui{
		App:     tview.NewApplication(),
		Table:   table,
		Info:    infoWidget,
		Help:    helpWidget,
		Entries: entries,
		Matrix:  m,
	}
	summary := SummaryLines(m)
	tui.Summary = summary[0] + "\n" + summary[1]
	tui.loadCells()
	tui.setAppFunctions()

	tui.Notify(tui.Summary)
	tui.UpdateHelp("[hjkl/arrows]:move [q/Esc]:quit")
	if len(entries) > 0 {
		table.Select(1, 1)
	}
	return tui
}

func (tui *Tui) setAppFunctions() {
	tui.Table.SetSelectionChangedFunc(func(row, column int) {
		tui.selectCell(row, column)
	})

	tui.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			tui.App.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				tui.App.Stop()
				return nil
			}
		}
		return event
	})
}

func (tui *Tui) Run() error {
	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tui.Table, 0, 1, true).
		AddItem(tui.Info, 5, 0, false).
		AddItem(tui.Help, 1, 0, false)

	return tui.App.SetRoot(root, true).SetFocus(tui.Table).Run()
}
