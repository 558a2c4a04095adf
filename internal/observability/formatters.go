// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/permit-navigator/internal/datastore"
	"github.com/jonathan/permit-navigator/internal/extraction"
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

// PrintResolvedSources outputs a summary of the resolved source documents.
func (p *Printer) PrintResolvedSources(responses []*datastore.Response) {
	if len(responses) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resolved %d source(s):\n\n", len(responses)))

	count := min(len(responses), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := responses[i]
		url := r.SourceURL
		if len(url) > 45 {
			url = url[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", url))
		sb.WriteString(fmt.Sprintf("  %s, %d bytes\n", r.MimeType, len(r.Content)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(responses) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more sources", len(responses)-maxItemsToShow))
	}

	p.printBox("RESOLVED SOURCES", sb.String())
}

// PrintExtractedContent outputs a human-readable summary of the extraction
// result.
func (p *Printer) PrintExtractedContent(content *extraction.ExtractedContent) {
	if content == nil {
		return
	}

	var sb strings.Builder

	summary := content.ShortSummary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Summary:  %s\n", summary))
	sb.WriteString(fmt.Sprintf("Contact:  %s\n", content.DepartmentContact))
	sb.WriteString("\n")

	if len(content.AssociatedPermitsAndFees) > 0 {
		sb.WriteString("Permits & Fees:\n")
		count := min(len(content.AssociatedPermitsAndFees), maxItemsToShow)
		for i := 0; i < count; i++ {
			fee := content.AssociatedPermitsAndFees[i]
			sb.WriteString(fmt.Sprintf("  • %s", fee.Name))
			if fee.Fee != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", fee.Fee))
			}
			sb.WriteString("\n")
		}
		if len(content.AssociatedPermitsAndFees) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(content.AssociatedPermitsAndFees)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(content.ProcessSteps) > 0 {
		sb.WriteString("Process Steps:\n")
		count := min(len(content.ProcessSteps), maxItemsToShow)
		for i := 0; i < count; i++ {
			step := content.ProcessSteps[i]
			if len(step) > 50 {
				step = step[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
		if len(content.ProcessSteps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(content.ProcessSteps)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(content.WhoIsInvolved) > 0 {
		sb.WriteString("Departments:\n")
		count := min(len(content.WhoIsInvolved), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", content.WhoIsInvolved[i].Department))
		}
		if len(content.WhoIsInvolved) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(content.WhoIsInvolved)-3))
		}
	}

	p.printBox("EXTRACTED PERMIT INFORMATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCustomSections outputs the user-requested custom sections, if any.
func (p *Printer) PrintCustomSections(sections []extraction.CustomSectionContent) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d custom section(s):\n\n", len(sections)))

	for i, section := range sections {
		text := section.Content
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", section.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", text))
		if i < len(sections)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CUSTOM SECTIONS", sb.String())
}

// PrintTimeline outputs the expected process timeline.
func (p *Printer) PrintTimeline(entries []extraction.TimelineEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		step := entry.Step
		if len(step) > 40 {
			step = step[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-42s %s\n", step, entry.Duration))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(entries)-maxItemsToShow))
	}

	p.printBox("PROCESS TIMELINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDroppedFrames reports skipped stream fragments after a chat reply.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDroppedFrames(dropped int64) {
	if dropped == 0 {
		return
	}
	fmt.Fprintf(p.out, "[stream] skipped %d malformed frame(s)\n", dropped)
}
