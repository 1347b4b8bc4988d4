// Package report renders advisories as markdown or HTML documents.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pqc-tools/pqadvise/internal/models"
	"github.com/pqc-tools/pqadvise/internal/ranking"
)

// Markdown renders one advisory as a markdown report with the ranked table,
// per-criterion breakdowns, and the rejection list.
func Markdown(adv *models.Advisory) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Advisory: %s\n\n", adv.Profile.Name)
	fmt.Fprintf(&sb, "Request `%s` — required role: %s, minimum status: %s\n\n",
		adv.RequestID, adv.Profile.RequiredRole, adv.Profile.MinStatus)

	if adv.NoCandidate {
		sb.WriteString("**No algorithm satisfies the profile.** Every catalog entry failed a hard constraint; see rejections below.\n\n")
	} else {
		sb.WriteString("## Ranked recommendations\n\n")
		sb.WriteString("| Rank | Algorithm | Weighted total | Status |\n")
		sb.WriteString("|-----:|-----------|---------------:|--------|\n")
		for _, r := range adv.Ranked {
			fmt.Fprintf(&sb, "| %d | %s | %.3f | %s |\n", r.Rank, r.AlgorithmID, r.WeightedTotal, r.Status)
		}
		sb.WriteString("\n## Why\n\n")
		for _, r := range adv.Ranked {
			exp := ranking.Explain(r)
			fmt.Fprintf(&sb, "- **%s**: %s\n", exp.AlgorithmID, exp.Summary)
		}
		sb.WriteString("\n")
	}

	if len(adv.Rejected) > 0 {
		sb.WriteString("## Rejected\n\n")
		sb.WriteString("| Algorithm | Reason | Detail |\n")
		sb.WriteString("|-----------|--------|--------|\n")
		for _, rej := range adv.Rejected {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", rej.AlgorithmID, rej.Reason, rej.Detail)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// md renders markdown with table support, matching what Markdown emits.
var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders the markdown report to HTML.
func HTML(adv *models.Advisory) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(adv)), &buf); err != nil {
		return "", fmt.Errorf("rendering advisory HTML: %w", err)
	}
	return buf.String(), nil
}
