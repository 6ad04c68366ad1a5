package cli

import (
	"GameAdmin/internal/building/domain"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	successBanner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#2E7D32")).Padding(0, 1)
	errorBanner   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#C62828")).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1976D2")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successBanner.Render(msg))
}

func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorBanner.Render(msg))
}

// renderConfigurations 与页面表格的列一致。
func renderConfigurations(cs []domain.Configuration) string {
	if len(cs) == 0 {
		return mutedStyle.Render("No configurations yet.")
	}
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			string(c.BuildingType),
			strconv.FormatInt(c.BuildingCost, 10),
			strconv.Itoa(c.ConstructionTime),
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "Building Type", "Building Cost", "Construction Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func renderTypes(title string, ts []domain.BuildingType) string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		names = append(names, string(t))
	}
	body := mutedStyle.Render("(none)")
	if len(names) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, names...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(title), cellStyle.Render(body))
}
