package narrative

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npcc/npcc/internal/modules/reference"
	"github.com/npcc/npcc/pkg/formulas"
)

var exampleHeadlines = []string{
	"Prime Minister Announces Historic Climate Victory as National Emissions Drop 32% Below 2020 Levels",
	"Government Commits $180B to Renewable Energy Revolution, Targeting 75% Clean Grid by 2040",
	"Treasury Reports $50B Revenue Gain from Carbon Tax as Industries Pivot to Green Technologies",
}

// BuildPrompt writes the press-secretary prompt for a set of levels.
func BuildPrompt(levers []reference.PolicyLever, levels reference.Levels, temperatureChange, fiscalCost float64) string {
	var b strings.Builder

	b.WriteString("You are a senior government press secretary in the year 2035.\n")
	b.WriteString("Write a professional, confident 1-sentence headline announcing the results of the national climate policy program.\n\n")

	b.WriteString("Current Policy Implementation Levels (0-100 scale):\n")
	for _, pl := range levers {
		fmt.Fprintf(&b, "- %s: %d%%\n", pl.Label, levels.Get(pl.ID))
	}

	b.WriteString("\nAdditional Context:\n")
	fmt.Fprintf(&b, "- Temperature mitigation achieved: %s°C\n", plain(formulas.Round(temperatureChange, 3)))
	fmt.Fprintf(&b, "- Total fiscal investment: $%sB\n\n", plain(formulas.Round(fiscalCost, 2)))

	b.WriteString("Write ONE headline that sounds like it came from a government press conference. ")
	b.WriteString("Be specific, use numbers when relevant, and convey a sense of achievement or urgency depending on the policy levels.\n\n")

	b.WriteString("Examples of good headlines:\n")
	for _, example := range exampleHeadlines {
		fmt.Fprintf(&b, "- %q\n", example)
	}

	b.WriteString("\nYour headline:")
	return b.String()
}

// CleanHeadline trims whitespace and strips one pair of surrounding double
// quotes, then one pair of single quotes.
func CleanHeadline(s string) string {
	s = strings.TrimSpace(s)
	s = unwrap(s, '"')
	s = unwrap(s, '\'')
	return s
}

func unwrap(s string, quote byte) string {
	if len(s) >= 2 && s[0] == quote && s[len(s)-1] == quote {
		return s[1 : len(s)-1]
	}
	return s
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
