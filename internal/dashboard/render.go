package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shenikar/drone_analytics_dashboard/internal/models"
)

const (
	noDataText       = "No data"
	noViolationsText = "No violations found"
	noRecentText     = "No recent violations found"
	maxBarWidth      = 40
	maxCellWidth     = 32
)

var tableColumns = []struct {
	field SortField
	title string
}{
	{SortByDate, "Date"},
	{SortByTimestamp, "Time"},
	{SortByType, "Type"},
	{SortByDroneID, "Drone ID"},
	{SortByLocation, "Location"},
}

// Renderer выводит дашборд в терминал
type Renderer struct {
	w       io.Writer
	markers MarkerRenderer
}

// NewRenderer; markers может быть nil, тогда секция карты не выводится
func NewRenderer(w io.Writer, markers MarkerRenderer) *Renderer {
	return &Renderer{w: w, markers: markers}
}

// Render печатает все секции в порядке экрана
func (r *Renderer) Render(d *Dashboard) error {
	stats := d.Stats()
	violations := d.Violations()

	sections := []string{
		KPICards(stats),
		TypeBreakdownSection(stats),
		TimelineSection(violations),
		RecentSection(stats),
		Table(violations, d.SortState()),
	}
	if status := d.Status(); status.Kind != StatusIdle {
		sections = append([]string{fmt.Sprintf("[%s] %s\n", status.Kind, status.Message)}, sections...)
	}

	for _, s := range sections {
		if _, err := io.WriteString(r.w, s+"\n"); err != nil {
			return err
		}
	}

	if r.markers == nil {
		return nil
	}
	if _, err := io.WriteString(r.w, "Map\n"); err != nil {
		return err
	}
	return r.markers.Render(r.w, Markers(violations))
}

// KPICards - четыре карточки с основными показателями
func KPICards(stats *models.DashboardStats) string {
	if stats == nil {
		stats = &models.DashboardStats{}
	}
	cards := [][2]string{
		{"Total Violations", strconv.Itoa(stats.TotalViolations)},
		{"Active Drones", strconv.Itoa(len(stats.Drones))},
		{"Locations Monitored", strconv.Itoa(len(stats.Locations))},
		{"Violation Types", strconv.Itoa(len(stats.ViolationsByType))},
	}

	width := 0
	for _, c := range cards {
		width = max(width, runewidth.StringWidth(c[0]), runewidth.StringWidth(c[1]))
	}

	var titles, values, border []string
	for _, c := range cards {
		titles = append(titles, runewidth.FillRight(c[0], width))
		values = append(values, runewidth.FillRight(c[1], width))
		border = append(border, strings.Repeat("-", width))
	}

	var sb strings.Builder
	sb.WriteString("+-" + strings.Join(border, "-+-") + "-+\n")
	sb.WriteString("| " + strings.Join(titles, " | ") + " |\n")
	sb.WriteString("| " + strings.Join(values, " | ") + " |\n")
	sb.WriteString("+-" + strings.Join(border, "-+-") + "-+\n")
	return sb.String()
}

// TypeBreakdownSection - распределение по типам с процентами
func TypeBreakdownSection(stats *models.DashboardStats) string {
	var sb strings.Builder
	sb.WriteString("Violation Distribution\n")

	if stats == nil || stats.TotalViolations == 0 {
		sb.WriteString("  " + noDataText + "\n")
		return sb.String()
	}

	shares := TypeBreakdown(stats.ViolationsByType, stats.TotalViolations)
	labels := make([]string, len(shares))
	for i, s := range shares {
		labels[i] = s.Type
	}
	width := labelWidth(labels)
	for _, s := range shares {
		fmt.Fprintf(&sb, "  %s %5d %6.1f%% %s\n",
			runewidth.FillRight(s.Type, width), s.Count, s.Percent, bar(s.Count, stats.TotalViolations))
	}
	return sb.String()
}

// TimelineSection - количество нарушений по датам
func TimelineSection(violations []models.Violation) string {
	var sb strings.Builder
	sb.WriteString("Violations Timeline\n")

	series := DateSeries(violations)
	if len(series) == 0 {
		sb.WriteString("  " + noDataText + "\n")
		return sb.String()
	}

	peak := 0
	labels := make([]string, len(series))
	for i, b := range series {
		peak = max(peak, b.Count)
		labels[i] = b.Key
	}
	width := labelWidth(labels)
	for _, b := range series {
		fmt.Fprintf(&sb, "  %s %5d %s\n", runewidth.FillRight(b.Key, width), b.Count, bar(b.Count, peak))
	}
	return sb.String()
}

func RecentSection(stats *models.DashboardStats) string {
	var sb strings.Builder
	sb.WriteString("Recent Activity\n")

	if stats == nil || len(stats.RecentViolations) == 0 {
		sb.WriteString("  " + noRecentText + "\n")
		return sb.String()
	}
	for _, v := range stats.RecentViolations {
		fmt.Fprintf(&sb, "  %s  %s  %s  %s\n", v.Date, v.Timestamp, v.Type, v.DroneID)
	}
	return sb.String()
}

// Table - таблица нарушений; в заголовке отмечена колонка сортировки
func Table(violations []models.Violation, state SortState) string {
	header := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		header[i] = col.title
		if col.field == state.Field {
			header[i] += sortIndicator(state.Direction)
		}
	}

	rows := [][]string{header}
	for _, v := range violations {
		row := make([]string, len(tableColumns))
		for i, col := range tableColumns {
			row[i] = runewidth.Truncate(col.field.value(v), maxCellWidth, "...")
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(tableColumns))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	sb.WriteString("Violations Table\n")
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = runewidth.FillRight(cell, widths[j])
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		if i == 0 {
			seps := make([]string, len(widths))
			for j, w := range widths {
				seps[j] = strings.Repeat("-", w)
			}
			sb.WriteString("|-" + strings.Join(seps, "-|-") + "-|\n")
		}
	}

	if len(violations) == 0 {
		sb.WriteString(noViolationsText + "\n")
	}
	return sb.String()
}

func sortIndicator(d SortDirection) string {
	if d == Desc {
		return " v"
	}
	return " ^"
}

func labelWidth(labels []string) int {
	width := 0
	for _, l := range labels {
		width = max(width, runewidth.StringWidth(l))
	}
	return width
}

func bar(count, peak int) string {
	if peak <= 0 || count <= 0 {
		return ""
	}
	return strings.Repeat("#", max(1, count*maxBarWidth/peak))
}
