package imagery

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/npcc/npcc/internal/modules/impact"
	"github.com/npcc/npcc/internal/modules/reference"
)

// Scenario names a predefined city template.
type Scenario string

// Predefined scenarios.
const (
	ScenarioCoastalCity    Scenario = "coastal_city"
	ScenarioIndustrialCity Scenario = "industrial_city"
	ScenarioSuburban       Scenario = "suburban"
	ScenarioMegacity       Scenario = "megacity"
	ScenarioModernCity     Scenario = "modern_city"
)

var scenarios = map[Scenario]string{
	ScenarioCoastalCity:    "coastal metropolitan city with harbor, ocean view, skyscrapers by the waterfront",
	ScenarioIndustrialCity: "industrial city with factories, manufacturing districts, port facilities",
	ScenarioSuburban:       "suburban town with residential areas, shopping districts, highways",
	ScenarioMegacity:       "massive megacity with dense skyscrapers, elevated highways, urban density",
	ScenarioModernCity:     "modern city skyline with downtown district, parks, mixed-use development",
}

const (
	maxTransformations  = 10
	maxDescribedActive  = 3
	activeLevelCutoff   = 50
	photorealisticStyle = "photorealistic, detailed, professional photography, 4K, high resolution"
	artisticStyle       = "digital art, concept art, dramatic lighting, cinematic"
)

// ScenarioDescription returns the city template for a scenario, falling back
// to the modern city.
func ScenarioDescription(s Scenario) string {
	if desc, ok := scenarios[s]; ok {
		return desc
	}
	return scenarios[ScenarioModernCity]
}

// BaselinePrompt describes the city in its current polluted state.
func BaselinePrompt(city string, style Style) string {
	var b strings.Builder
	b.WriteString(city)
	b.WriteString(", pollution, smog, traffic congestion, diesel vehicles, ")
	b.WriteString("industrial smokestacks, gray skies, carbon emissions, ")
	b.WriteString("urban sprawl, asphalt parking lots, ")
	if style == StylePhotorealistic {
		b.WriteString(photorealisticStyle)
	} else {
		b.WriteString(artisticStyle)
	}
	return b.String()
}

type transformation struct {
	lever   reference.Lever
	above   int
	phrases []string
}

// Ordered as they appear in the prompt.
var transformations = []transformation{
	{reference.EVAdoption, 50, []string{"electric vehicles everywhere", "charging stations"}},
	{reference.EVAdoption, 30, []string{"silent clean streets"}},
	{reference.RenewableEnergy, 50, []string{"solar panels on rooftops", "wind turbines in distance"}},
	{reference.RenewableEnergy, 70, []string{"solar farms visible"}},
	{reference.Reforestation, 40, []string{"green parks", "trees lining streets"}},
	{reference.Reforestation, 70, []string{"urban forest", "rooftop gardens"}},
	{reference.PublicTransport, 50, []string{"modern tram systems", "bike lanes"}},
	{reference.PublicTransport, 70, []string{"elevated metro"}},
	{reference.IndustrialControls, 50, []string{"clean industrial areas", "no smoke from factories"}},
	{reference.GreenBuildings, 50, []string{"green building facades", "vertical gardens"}},
	{reference.GreenBuildings, 70, []string{"eco-architecture"}},
	{reference.WasteManagement, 50, []string{"clean streets", "recycling infrastructure"}},
}

// Transformations lists the visual changes implied by the levels and the
// size of the temperature mitigation.
func Transformations(levels reference.Levels, temperatureMitigation float64) []string {
	out := []string{}
	for _, t := range transformations {
		if levels.Get(t.lever) > t.above {
			out = append(out, t.phrases...)
		}
	}

	mitigation := math.Abs(temperatureMitigation)
	if mitigation > 0.2 {
		out = append(out, "clear blue skies", "visible sunshine")
	}
	if mitigation > 0.4 {
		out = append(out, "pristine air quality", "vibrant colors")
	}
	return out
}

// ImpactPrompt describes the city transformed by the policy mix. At most ten
// transformations are included.
func ImpactPrompt(city string, levels reference.Levels, temperatureMitigation float64, style Style) string {
	changes := Transformations(levels, temperatureMitigation)
	if len(changes) > maxTransformations {
		changes = changes[:maxTransformations]
	}

	var b strings.Builder
	b.WriteString(city)
	b.WriteString(", ")
	if len(changes) > 0 {
		b.WriteString(strings.Join(changes, ", "))
		b.WriteString(", ")
	}
	b.WriteString("sustainable future city, clean energy, eco-friendly, ")
	if style == StylePhotorealistic {
		b.WriteString(photorealisticStyle)
	} else {
		b.WriteString(artisticStyle)
		b.WriteString(", hopeful atmosphere")
	}
	return b.String()
}

// NegativePrompt lists what a rendered image should avoid.
func NegativePrompt(baseline bool) string {
	if baseline {
		return "clean, green, solar panels, wind turbines, trees, parks, electric cars, utopian"
	}
	return "pollution, smog, smoke, dirty, gray, industrial waste, traffic jam, dystopian, dark"
}

// Describe summarizes the levers above 50% and the projected outcome.
func Describe(levels reference.Levels, result *impact.CalculationResult) string {
	title := cases.Title(language.English)

	var active []string
	for _, id := range reference.AllLevers() {
		level := levels.Get(id)
		if level > activeLevelCutoff {
			name := title.String(strings.ReplaceAll(string(id), "_", " "))
			active = append(active, fmt.Sprintf("%s (%d%%)", name, level))
		}
	}

	shown := active
	if len(shown) > maxDescribedActive {
		shown = shown[:maxDescribedActive]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Urban transformation visualization showing the impact of %d major climate policies: ", len(active))
	b.WriteString(strings.Join(shown, ", "))
	if extra := len(active) - maxDescribedActive; extra > 0 {
		fmt.Fprintf(&b, ", and %d more", extra)
	}
	fmt.Fprintf(&b, ". Projected temperature mitigation: %s, Total investment: %s.",
		result.TemperatureMitigationFormatted, result.TotalCostFormatted)
	return b.String()
}

// renderPrompt folds the negative prompt into the text sent to the renderer.
func renderPrompt(prompt, negative string) string {
	return prompt + ". Avoid: " + negative
}
