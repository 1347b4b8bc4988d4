package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pqc-tools/pqadvise/internal/models"
	"github.com/pqc-tools/pqadvise/internal/ranking"
)

// printAdvisoryTable renders one advisory as a plain-text report.
func printAdvisoryTable(w io.Writer, adv *models.Advisory) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, " ADVISORY: %s\n", adv.Profile.Name)
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "  request: %s\n", adv.RequestID)
	fmt.Fprintf(w, "  role: %s   min status: %s   stateful allowed: %v\n",
		adv.Profile.RequiredRole, adv.Profile.MinStatus, adv.Profile.AllowStateful)
	fmt.Fprintln(w)

	if adv.NoCandidate {
		fmt.Fprintln(w, "  No algorithm satisfies the profile.")
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, strings.Repeat("-", 70))
		fmt.Fprintln(w, " RANKED")
		fmt.Fprintln(w, strings.Repeat("-", 70))
		fmt.Fprintf(w, "  %s  %s  %s  %s\n",
			padRight("Rank", 4), padRight("Algorithm", 26), padRight("Total", 8), "Status")
		for _, r := range adv.Ranked {
			fmt.Fprintf(w, "  %s  %s  %s  %s\n",
				padRight(fmt.Sprintf("%d", r.Rank), 4),
				padRight(truncateName(r.AlgorithmID, 26), 26),
				padRight(fmt.Sprintf("%.3f", r.WeightedTotal), 8),
				r.Status)
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, strings.Repeat("-", 70))
		fmt.Fprintln(w, " BREAKDOWN")
		fmt.Fprintln(w, strings.Repeat("-", 70))
		for _, r := range adv.Ranked {
			exp := ranking.Explain(r)
			fmt.Fprintf(w, "  %s\n", exp.AlgorithmID)
			for _, cs := range exp.Contributions {
				fmt.Fprintf(w, "    %s  %.3f × %.2f = %.3f\n",
					padRight(cs.Criterion, 18), cs.Normalized, cs.Weight, cs.Contribution)
			}
		}
		fmt.Fprintln(w)
	}

	if len(adv.Rejected) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 70))
		fmt.Fprintln(w, " REJECTED")
		fmt.Fprintln(w, strings.Repeat("-", 70))
		for _, rej := range adv.Rejected {
			fmt.Fprintf(w, "  %s  %s  %s\n",
				padRight(truncateName(rej.AlgorithmID, 26), 26),
				padRight(string(rej.Reason), 24),
				rej.Detail)
		}
		fmt.Fprintln(w)
	}
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
