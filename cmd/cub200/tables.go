package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/cub200/examples/cub200"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

// newPlainTable returns a table with alternating row colors. The first column is right aligned.
func newPlainTable(withHeader bool) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if withHeader && row < 0 {
				s = headerRowStyle
				return
			}
			if row%2 == 0 {
				s = oddRowStyle
			} else {
				s = evenRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
}

func configTable(cfg *cub200.Config) *lgtable.Table {
	table := newPlainTable(false)
	datasetPath, err := cfg.DatasetPath()
	if err != nil {
		datasetPath = cfg.BaseDir
	}
	table.Row("dataset", datasetPath)
	table.Row("alignment", cfg.Alignment.String())
	table.Row("short side", fmt.Sprintf("%d", cfg.Size))
	table.Row("filter", cfg.Filter)
	table.Row("train crop", cfg.TrainCrop.String())
	table.Row("test crop", cfg.TestCrop.String())
	table.Row("max value", fmt.Sprintf("%g", cfg.MaxValue))
	if cfg.CacheDir != "" {
		cachePath, err := cfg.CachePath()
		if err == nil {
			table.Row("cache", cachePath)
		}
	}
	return table
}

func splitsTable(splits ...*cub200.Split) *lgtable.Table {
	table := newPlainTable(true)
	table.Headers("Split", "Examples", "Shape", "Memory", "Labels", "Mean (R,G,B)", "StdDev (R,G,B)")
	for _, split := range splits {
		st := split.Stats()
		numLabels := 0
		for _, count := range st.LabelCounts {
			if count > 0 {
				numLabels++
			}
		}
		table.Row(
			split.Name,
			humanize.Comma(int64(st.Count)),
			split.Images.String(),
			humanize.Bytes(uint64(split.Memory())),
			fmt.Sprintf("%d in [%d, %d]", numLabels, st.MinLabel, st.MaxLabel),
			fmt.Sprintf("%.1f, %.1f, %.1f", st.Mean[0], st.Mean[1], st.Mean[2]),
			fmt.Sprintf("%.1f, %.1f, %.1f", st.StdDev[0], st.StdDev[1], st.StdDev[2]),
		)
	}
	return table
}

func classesTable(names []string, train, test *cub200.Split) *lgtable.Table {
	trainStats, testStats := train.Stats(), test.Stats()
	table := newPlainTable(true)
	table.Headers("Label", "Name", "# Train", "# Test")
	for label, name := range names {
		row := []string{fmt.Sprintf("%d", label), name, "-", "-"}
		if label < cub200.NumLabels {
			row[2] = humanize.Comma(int64(trainStats.LabelCounts[label]))
			row[3] = humanize.Comma(int64(testStats.LabelCounts[label]))
		}
		table.Row(row...)
	}
	return table
}
