package panel

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/Gaurav-Gosain/mapdesk/internal/theme"
)

// Status shows host CPU and memory readings. Refresh is called on a
// timer from the desk update loop; Render only formats the cached
// sample so the view never blocks on a probe.
type Status struct {
	hostname string
	cpuPct   float64
	memPct   float64
	memUsed  uint64
	memTotal uint64
	sampled  time.Time
	probeErr error
}

// NewStatus returns a status panel with an immediate first sample.
func NewStatus() *Status {
	s := &Status{}
	if info, err := host.Info(); err == nil {
		s.hostname = info.Hostname
	}
	s.Refresh()
	return s
}

// Refresh takes a new CPU and memory sample.
func (s *Status) Refresh() {
	s.sampled = time.Now()
	s.probeErr = nil

	if pcts, err := cpu.Percent(0, false); err != nil {
		s.probeErr = err
	} else if len(pcts) > 0 {
		s.cpuPct = pcts[0]
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		s.probeErr = err
	} else {
		s.memPct = vm.UsedPercent
		s.memUsed = vm.Used
		s.memTotal = vm.Total
	}
}

// Render implements wm.ContentProvider.
func (s *Status) Render(width, height int) string {
	key := lipgloss.NewStyle().Foreground(theme.DockBarDimmed())
	val := lipgloss.NewStyle().Foreground(theme.PanelFg())

	if s.probeErr != nil {
		return fitBlock(key.Render("status unavailable: ")+val.Render(s.probeErr.Error()), width, height)
	}

	barWidth := width - 12
	if barWidth > 24 {
		barWidth = 24
	}

	rows := []string{
		fmt.Sprintf("%s %s", key.Render(pad("host", 5)), val.Render(s.hostname)),
		fmt.Sprintf("%s %s %s", key.Render(pad("cpu", 5)), gauge(s.cpuPct, barWidth), val.Render(fmt.Sprintf("%5.1f%%", s.cpuPct))),
		fmt.Sprintf("%s %s %s", key.Render(pad("mem", 5)), gauge(s.memPct, barWidth), val.Render(fmt.Sprintf("%5.1f%%", s.memPct))),
		fmt.Sprintf("%s %s", key.Render(pad("", 5)), val.Render(fmt.Sprintf("%s / %s", formatBytes(s.memUsed), formatBytes(s.memTotal)))),
	}
	return fitBlock(strings.Join(rows, "\n"), width, height)
}

// gauge renders a horizontal usage bar colored by load level.
func gauge(pct float64, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	color := theme.StatusGood()
	if pct >= 80 {
		color = theme.StatusWarn()
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(theme.DockBarDimmed()).Render(strings.Repeat("░", width-filled))
	return bar + rest
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%dB", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
