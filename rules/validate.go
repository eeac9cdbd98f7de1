package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`^R\d{3,}$`)

var (
	allowedSkinTypes  = buildSet(SkinTypes, SkinAny)
	allowedConcerns   = buildSet(Concerns, ConcernAny)
	structuralRoutine = buildSet([]Routine{RoutineAMStepOrder, RoutinePMStepOrder, RoutineConsistency})
	allowedSafety     = buildSet(SafetyOrder)
)

func buildSet[T ~string](values []T, extra ...T) map[T]struct{} {
	set := make(map[T]struct{}, len(values)+len(extra))
	for _, v := range values {
		set[v] = struct{}{}
	}
	for _, v := range extra {
		set[v] = struct{}{}
	}
	return set
}

// Validate checks a catalog against the generation invariants: ids are
// sequential R-numbers starting at R001, tags parse into known facets
// with enumerated values, and texts are non-empty with the advice
// sentence matching the tagged concern. Errors are annotated with the
// offending record index.
func Validate(cards []Rule) error {
	if len(cards) == 0 {
		return errors.New("catalog is empty")
	}
	for i, card := range cards {
		if err := validateRule(card, i); err != nil {
			return fmt.Errorf("rules[%d]: %w", i, err)
		}
	}
	return nil
}

func validateRule(card Rule, index int) error {
	if !idPattern.MatchString(card.ID) {
		return fmt.Errorf("invalid id %q", card.ID)
	}
	if want := fmt.Sprintf("R%03d", index+1); card.ID != want {
		return fmt.Errorf("id %q out of sequence, want %q", card.ID, want)
	}
	if strings.TrimSpace(card.Text) == "" {
		return errors.New("empty text")
	}

	facets, err := parseTags(card.Tags)
	if err != nil {
		return err
	}

	if _, ok := facets["safety"]; ok {
		return validateSafetyRule(facets)
	}
	return validateCategoryRule(card, facets)
}

// parseTags splits a tags string into a facet map, rejecting malformed
// pairs and duplicate facets.
func parseTags(tags string) (map[string]string, error) {
	fields := strings.Fields(tags)
	if len(fields) == 0 {
		return nil, errors.New("empty tags")
	}
	facets := make(map[string]string, len(fields))
	for _, field := range fields {
		key, value, ok := strings.Cut(field, ":")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("malformed tag %q", field)
		}
		if _, dup := facets[key]; dup {
			return nil, fmt.Errorf("duplicate facet %q", key)
		}
		facets[key] = value
	}
	return facets, nil
}

func validateSafetyRule(facets map[string]string) error {
	if len(facets) != 2 {
		return fmt.Errorf("safety rule must carry exactly safety and routine facets, got %d", len(facets))
	}
	if _, ok := allowedSafety[Safety(facets["safety"])]; !ok {
		return fmt.Errorf("unknown safety category %q", facets["safety"])
	}
	if routine, ok := facets["routine"]; !ok || Routine(routine) != RoutineAny {
		return fmt.Errorf("safety rule routine must be %q, got %q", RoutineAny, routine)
	}
	return nil
}

func validateCategoryRule(card Rule, facets map[string]string) error {
	for _, facet := range []string{"skin_type", "concern", "routine"} {
		if _, ok := facets[facet]; !ok {
			return fmt.Errorf("missing %s facet", facet)
		}
	}
	if len(facets) != 3 {
		return fmt.Errorf("expected exactly skin_type, concern and routine facets, got %d", len(facets))
	}

	skinType := SkinType(facets["skin_type"])
	concern := Concern(facets["concern"])
	routine := Routine(facets["routine"])

	if _, ok := allowedSkinTypes[skinType]; !ok {
		return fmt.Errorf("unknown skin type %q", skinType)
	}
	if _, ok := allowedConcerns[concern]; !ok {
		return fmt.Errorf("unknown concern %q", concern)
	}

	if skinType == SkinAny || concern == ConcernAny {
		// Generic routine-structure rule.
		if skinType != SkinAny || concern != ConcernAny {
			return errors.New("generic rules must use skin_type:any with concern:any")
		}
		if _, ok := structuralRoutine[routine]; !ok {
			return fmt.Errorf("unknown structural routine %q", routine)
		}
		return nil
	}

	if routine != RoutineAM && routine != RoutinePM {
		return fmt.Errorf("category rule routine must be am or pm, got %q", routine)
	}
	if advice := concernAdvice[concern]; !strings.Contains(card.Text, advice) {
		return fmt.Errorf("text does not carry the %s advice sentence", concern)
	}
	return nil
}
