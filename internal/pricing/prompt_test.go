package pricing

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rabigarip/priceright/internal/tester"
)

func TestPrompt_Deterministic(t *testing.T) {
	in := fullInput()
	tester.Eq(t, Prompt(in), Prompt(in))
}

func TestPrompt_ProfileFields(t *testing.T) {
	in := fullInput()
	in.Shows = json.Number("12")
	in.Solo = json.Number("3")
	in.Site = true
	p := Prompt(in)

	for _, want := range []string{
		"- Medium: Oil Painting",
		"- Dimensions: 24 × 36 inches",
		"- Year Created: Recent",
		"- Career Stage: mid",
		"- Total Exhibitions: 12",
		"- Solo Shows: 3",
		"- Primary Market: New York",
		"- Social Following: t10k",
		"- Pieces Sold Per Year: 5-15",
		"- Has Portfolio Website: Yes",
	} {
		tester.True(t, strings.Contains(p, want), "prompt should contain "+want)
	}
}

func TestPrompt_UnitName(t *testing.T) {
	in := fullInput()
	in.Unit = "cm"
	tester.True(t, strings.Contains(Prompt(in), "24 × 36 cm"))

	in.Unit = "in"
	tester.True(t, strings.Contains(Prompt(in), "24 × 36 inches"))
}

func TestPrompt_OptionalDefaults(t *testing.T) {
	in := fullInput()
	p := Prompt(in)
	tester.True(t, strings.Contains(p, "- Year Created: Recent"))
	tester.True(t, strings.Contains(p, "- Total Exhibitions: 0"))
	tester.True(t, strings.Contains(p, "- Solo Shows: 0"))
	tester.True(t, strings.Contains(p, "- Has Portfolio Website: No"))

	in.Year = json.Number("2021")
	tester.True(t, strings.Contains(Prompt(in), "- Year Created: 2021"))
}

func TestPrompt_FormattingInstructions(t *testing.T) {
	p := Prompt(fullInput())
	tester.True(t, strings.Contains(p, "Return ONLY a valid JSON object"))
	tester.True(t, strings.Contains(p, "Do not wrap it in markdown code fences"))
	tester.True(t, strings.Contains(p, `"priceLow":<integer>`))
	tester.True(t, strings.Contains(p, "tips: exactly 3 items"))
	tester.True(t, strings.Contains(p, "Be realistic for the actual art market in New York."))
}
