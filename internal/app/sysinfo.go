package app

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuSamples is the width of the tray CPU graph.
const cpuSamples = 8

// StatsMsg is one system sample for the tray.
type StatsMsg struct {
	CPU    float64
	Memory float64
	Err    error
}

// SystemStats keeps the recent samples shown in the tray.
type SystemStats struct {
	CPUHistory []float64
	Memory     float64
	Sampled    bool
}

// SampleStatsCmd samples CPU and memory after delay.
func SampleStatsCmd(delay time.Duration) tea.Cmd {
	sample := func() tea.Msg {
		var msg StatsMsg
		pct, err := cpu.Percent(0, false)
		if err != nil {
			msg.Err = fmt.Errorf("sample cpu: %w", err)
			return msg
		}
		if len(pct) > 0 {
			msg.CPU = pct[0]
		}
		vm, err := mem.VirtualMemory()
		if err != nil {
			msg.Err = fmt.Errorf("sample memory: %w", err)
			return msg
		}
		msg.Memory = vm.UsedPercent
		return msg
	}
	if delay <= 0 {
		return sample
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return sample() })
}

// Record appends a sample, keeping the last cpuSamples values. Failed
// samples are ignored.
func (s *SystemStats) Record(msg StatsMsg) {
	if msg.Err != nil {
		return
	}
	if len(s.CPUHistory) >= cpuSamples {
		s.CPUHistory = s.CPUHistory[1:]
	}
	s.CPUHistory = append(s.CPUHistory, min(max(msg.CPU, 0), 100))
	s.Memory = msg.Memory
	s.Sampled = true
}

var cpuBars = []rune("▁▂▃▄▅▆▇█")

// CPUGraph returns a fixed-width bar graph with the latest percentage.
func (s SystemStats) CPUGraph(ascii bool) string {
	current := 0.0
	if len(s.CPUHistory) > 0 {
		current = s.CPUHistory[len(s.CPUHistory)-1]
	}
	if ascii {
		return fmt.Sprintf("CPU %3.0f%%", current)
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", cpuSamples-len(s.CPUHistory)))
	for _, usage := range s.CPUHistory {
		// 100/8 = 12.5
		sb.WriteRune(cpuBars[min(int(usage/12.5), len(cpuBars)-1)])
	}
	return fmt.Sprintf("CPU %s %3.0f%%", sb.String(), current)
}
