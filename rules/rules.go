package rules

import (
	"fmt"
	"strings"
)

// Rule is one generated rule card.
type Rule struct {
	// ID is the stable sequential identifier (R001, R002, ...).
	ID string `json:"id"`

	// Tags is a whitespace-separated list of facet:value pairs.
	Tags string `json:"tags"`

	// Text is the human-readable guideline.
	Text string `json:"text"`
}

// ExpectedCount is the number of rules a full generation produces:
// 5 skin types x 8 concerns x 2 routines, plus 3 generic and 4 safety
// rules.
const ExpectedCount = 87

// cautionText is appended to every category rule.
const cautionText = "Use mild, cosmetic skincare products and stop using anything that feels irritating."

// concernAdvice maps each catalog concern to its fixed guideline
// sentence. The table must stay total over Concerns; init enforces it.
var concernAdvice = map[Concern]string{
	ConcernAcne:          "Focus on lightweight, non-comedogenic textures and avoid heavy occlusive layers.",
	ConcernPigmentation:  "Look for brightening cosmetic ingredients and be consistent rather than using strong products.",
	ConcernDullness:      "Add gentle hydrating layers and avoid over-scrubbing the skin surface.",
	ConcernDryness:       "Use soft, cushioning textures and seal in hydration with a comfortable moisturizer.",
	ConcernRedness:       "Choose simple, fragrance‑free formulas and keep water temperature lukewarm.",
	ConcernTexture:       "Keep the barrier comfortable first; use any texture‑smoothing cosmetics sparingly.",
	ConcernFineLines:     "Layer hydrating serums and moisturizers to reduce the look of fine lines caused by dryness.",
	ConcernSunProtection: "Use a comfortable, broad cosmetic sunscreen and reapply according to the label.",
}

func init() {
	for _, concern := range Concerns {
		if _, ok := concernAdvice[concern]; !ok {
			panic(fmt.Sprintf("rules: concern %q has no advice sentence", concern))
		}
	}
}

// routineLabel maps a routine to its display label. Unrecognized values
// fall back to "evening", matching the catalog's historical behaviour;
// only am and pm are enumerated today.
func routineLabel(routine Routine) string {
	switch routine {
	case RoutineAM:
		return "morning"
	case RoutinePM:
		return "evening"
	default:
		return "evening"
	}
}

// Synthesize builds the guideline text for one (skin type, concern,
// routine) category. It is a pure function of its inputs; behaviour is
// only defined for the enumerated values.
func Synthesize(skinType SkinType, concern Concern, routine Routine) string {
	parts := []string{
		fmt.Sprintf("For %s skin with %s concerns, build a gentle %s routine.", skinType, concern, routineLabel(routine)),
		cautionText,
		concernAdvice[concern],
	}
	return strings.Join(parts, " ")
}

// genericRules are the fixed routine-structure rules appended after the
// category enumeration, before ids are assigned.
var genericRules = []Rule{
	{
		Tags: "skin_type:any concern:any routine:am_step_order",
		Text: "A gentle morning routine can follow this order: cleanse, optional mist, serum, moisturizer, and sunscreen.",
	},
	{
		Tags: "skin_type:any concern:any routine:pm_step_order",
		Text: "A simple evening routine can follow this order: cleanse, optional hydrating toner or essence, serum, moisturizer.",
	},
	{
		Tags: "skin_type:any concern:any routine:consistency",
		Text: "Consistency with a comfortable routine usually matters more than frequently swapping products.",
	},
}

// safetyRules are the fixed safety and meta rules closing the catalog,
// in SafetyOrder.
var safetyRules = []Rule{
	{
		Tags: "safety:patch_test routine:any",
		Text: "Before using a new cosmetic product on your face, patch test on a small area of skin and wait at least 24 hours to see how your skin responds.",
	},
	{
		Tags: "safety:introduce_slowly routine:any",
		Text: "Introduce only one new cosmetic product at a time so you can clearly see how your skin reacts and avoid overwhelming your routine.",
	},
	{
		Tags: "safety:avoid_over_exfoliating routine:any",
		Text: "Avoid exfoliating too often. If your skin feels tight, itchy, or looks very shiny and sensitive, reduce exfoliating products and focus on simple hydration.",
	},
	{
		Tags: "safety:non_medical routine:any",
		Text: "These suggestions are cosmetic and educational only, and are not a substitute for professional medical advice, diagnosis, or treatment.",
	},
}

// Generate assembles the full ordered catalog: category rules in
// skin type, concern, routine order, then the generic rules, then the
// safety rules, with sequential ids stamped over the final order.
func Generate() []Rule {
	cards := make([]Rule, 0, ExpectedCount)

	for _, skinType := range SkinTypes {
		for _, concern := range Concerns {
			for _, routine := range CatalogRoutines {
				cards = append(cards, Rule{
					Tags: fmt.Sprintf("skin_type:%s concern:%s routine:%s", skinType, concern, routine),
					Text: Synthesize(skinType, concern, routine),
				})
			}
		}
	}

	cards = append(cards, genericRules...)
	cards = append(cards, safetyRules...)

	assignIDs(cards)
	return cards
}

// assignIDs stamps 1-based sequential ids over the assembled order. It
// runs as a separate pass so reordering the assembly in Generate cannot
// silently change id assignment. Indexes past 999 keep their full width.
func assignIDs(cards []Rule) {
	for i := range cards {
		cards[i].ID = fmt.Sprintf("R%03d", i+1)
	}
}
