// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/staffing-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirement outputs a human-readable summary of a role requirement.
func (p *Printer) PrintRequirement(req *types.RoleRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skill:    %s\n", req.SkillName))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", req.Level))
	sb.WriteString(fmt.Sprintf("Duration: %d months at %d%%\n", req.DurationMonths, req.WorkloadPercent))
	if req.Urgency != "" {
		sb.WriteString(fmt.Sprintf("Urgency:  %s\n", req.Urgency))
	}
	if req.BusinessImpact != "" {
		sb.WriteString(fmt.Sprintf("Impact:   %s\n", req.BusinessImpact))
	}

	p.printBox("ROLE REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedOptions outputs the top ranked contract options with costs and
// the adjustments applied to each.
func (p *Printer) PrintRankedOptions(result *types.RankedOptions) {
	if result == nil || len(result.Options) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ranked %d contract options:\n\n", len(result.Options)))

	count := min(len(result.Options), maxItemsToShow)
	for i := 0; i < count; i++ {
		option := result.Options[i]
		marker := " "
		if option.Recommended {
			marker = "★"
		}
		sb.WriteString(fmt.Sprintf("#%d %s %s\n", i+1, marker, option.Type))
		sb.WriteString(fmt.Sprintf("    Total: %.0f (%.0f/month)\n", option.TotalProjectCost, option.CostPerMonth))
		if option.RiskMultiplier != 1.0 || option.UrgencyMultiplier != 1.0 {
			sb.WriteString(fmt.Sprintf("    Adjustments: risk ×%.2f, urgency ×%.2f\n",
				option.RiskMultiplier, option.UrgencyMultiplier))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Options) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more options", len(result.Options)-maxItemsToShow))
	}

	p.printBox("RANKED CONTRACT OPTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendation highlights the recommended option for a requirement.
func (p *Printer) PrintRecommendation(result *types.RankedOptions) {
	recommended := resultRecommendation(result)
	if recommended == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Contract: %s\n", recommended.Type))
	sb.WriteString(fmt.Sprintf("Total:    %.0f over %d months\n",
		recommended.TotalProjectCost, result.Requirement.DurationMonths))
	sb.WriteString(fmt.Sprintf("Monthly:  %.0f\n", recommended.CostPerMonth))
	if recommended.Notes != "" {
		sb.WriteString(fmt.Sprintf("Notes:    %s\n", recommended.Notes))
	}

	p.printBox("RECOMMENDED OPTION", strings.TrimSuffix(sb.String(), "\n"))
}

func resultRecommendation(result *types.RankedOptions) *types.RankedOption {
	if result == nil {
		return nil
	}
	return result.RecommendedOption()
}
