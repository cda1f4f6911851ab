package pricing

import (
	"encoding/json"
	"fmt"
)

// SystemInstruction reinforces the raw-JSON contract on every request.
const SystemInstruction = "You are a pricing expert. You output ONLY a single valid JSON object. No text before or after. No markdown. No code fences. Just raw JSON."

// promptTemplate is the single source of truth for the expected response
// shape. Any change to Report's fields must be mirrored here: the upstream
// model has no schema enforcement beyond instruction-following.
const promptTemplate = `You are PriceRight, an expert AI pricing engine for the art market. Analyze this working artist's profile and return a data-informed pricing recommendation.

ARTIST PROFILE:
- Medium: %s
- Dimensions: %s × %s %s
- Year Created: %s
- Career Stage: %s
- Total Exhibitions: %s
- Solo Shows: %s
- Primary Market: %s
- Social Following: %s
- Pieces Sold Per Year: %s
- Has Portfolio Website: %s

Return ONLY a valid JSON object. Do not include any text before or after the JSON. Do not wrap it in markdown code fences. No preamble. No explanation. Just the raw JSON object matching this exact shape:

{"priceLow":<integer>,"priceMid":<integer>,"priceHigh":<integer>,"marketContext":"<2-3 sentences about what artists at this career stage selling this medium typically charge in this market, and what key factors drive pricing in this segment>","positiveFactors":[{"factor":"<title, max 4 words>","detail":"<1 concise sentence>"}],"developmentAreas":[{"area":"<title, max 4 words>","suggestion":"<1 concise actionable sentence>"}],"tips":["<actionable tip>","<actionable tip>","<actionable tip>"],"confidence":"<low|medium|high>"}

CONSTRAINTS:
- positiveFactors: 3 to 5 items
- developmentAreas: 2 to 4 items
- tips: exactly 3 items
- All prices in USD. Be realistic for the actual art market in %s.
- Do NOT undersell. Exhibition history and consistent sales are real market signals — price reflects that.
- Factor in: medium-specific market rates, size as a multiplier (larger work = higher price), career-stage credibility, exhibition count as social proof, sales frequency as demand validation, market location premium (NYC/London command higher prices than smaller markets), online presence as a reach signal.
- priceLow: conservative but fair floor — what the work would reliably sell for.
- priceMid: the recommended sweet spot — best balance of confidence and value.
- priceHigh: realistic ceiling the market will bear given all signals.
- confidence: "high" if artist has strong sales + exhibitions, "medium" if some signals present, "low" if minimal data.`

// Prompt renders the user turn for the completion call. It is pure and
// deterministic: same input, same prompt.
func Prompt(in Input) string {
	unitName := "cm"
	if in.Unit == "in" {
		unitName = "inches"
	}
	site := "No"
	if in.Site {
		site = "Yes"
	}
	return fmt.Sprintf(promptTemplate,
		in.Medium,
		in.Width.String(),
		in.Height.String(),
		unitName,
		orDefault(in.Year, "Recent"),
		in.Career,
		orDefault(in.Shows, "0"),
		orDefault(in.Solo, "0"),
		in.Market,
		in.Followers,
		in.Sales,
		site,
		in.Market,
	)
}

// orDefault substitutes def for an absent or zero questionnaire number, the
// same falsy treatment the form fields get client-side.
func orDefault(n json.Number, def string) string {
	if s := n.String(); s != "" && s != "0" {
		return s
	}
	return def
}
