package cmd

import (
	"bbsync/internal/model"
	"bbsync/internal/repository"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

const timeLayout = "2006-01-02 15:04:05"

func printTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()
}

func statusRows(snap model.SessionSnapshot, stats repository.Stats, now time.Time) [][]string {
	lastSync := "-"
	if snap.LastSync != nil {
		lastSync = snap.LastSync.Format(timeLayout)
		if snap.LastFile != "" {
			lastSync += " (" + snap.LastFile + ")"
		}
	}

	return [][]string{
		{"dir", snap.WatchDir},
		{"target", snap.Target},
		{"uptime", now.Sub(snap.StartedAt).Round(time.Second).String()},
		{"synced", fmt.Sprint(snap.Synced)},
		{"failed", fmt.Sprint(snap.Failed)},
		{"in flight", fmt.Sprint(snap.InFlight)},
		{"last sync", lastSync},
		{"all time", fmt.Sprintf("%d synced, %d failed", stats.Success, stats.Failed)},
	}
}

func historyRows(histories []model.History) [][]string {
	rows := make([][]string, 0, len(histories))
	for _, h := range histories {
		status := "✓"
		if h.Status == model.StatusFailed {
			status = "✗"
		}

		ram := "-"
		if h.Status == model.StatusSuccess {
			ram = fmt.Sprintf("%gGB", h.RamUsage)
		}

		detail := string(h.Failure)
		if h.ErrMsg != "" {
			detail = h.ErrMsg
		}

		name := h.Filename
		if name == "" {
			name = h.SrcPath
		}

		rows = append(rows, []string{
			status,
			h.SyncedAt.Format(timeLayout),
			h.Strategy,
			name,
			ram,
			detail,
		})
	}

	return rows
}
