package main

import (
	"path/filepath"
	"strconv"

	"github.com/bndr/gotabulate"

	"shape-exporter/internal/emit"
)

// renderSummary formats one row per descriptor.
func renderSummary(s *emit.Summary) string {
	if len(s.Results) == 0 {
		return "no marked declarations found\n"
	}

	rows := make([][]string, 0, len(s.Results))
	for _, r := range s.Results {
		status := "ok"
		if !r.OK() {
			status = "failed: " + r.Err.Error()
		}

		rows = append(rows, []string{r.Class, filepath.Base(r.Path), strconv.Itoa(r.Fields), status})
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"Class", "File", "Fields", "Status"})
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(60)

	return t.Render("grid")
}
