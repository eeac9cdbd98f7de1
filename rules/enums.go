package rules

// SkinType identifies one of the fixed skin type categories.
type SkinType string

const (
	// SkinOily indicates oily skin.
	SkinOily SkinType = "oily"

	// SkinDry indicates dry skin.
	SkinDry SkinType = "dry"

	// SkinCombination indicates combination skin.
	SkinCombination SkinType = "combination"

	// SkinSensitive indicates sensitive skin.
	SkinSensitive SkinType = "sensitive"

	// SkinNormal indicates normal skin.
	SkinNormal SkinType = "normal"

	// SkinAny marks a rule that applies regardless of skin type.
	SkinAny SkinType = "any"
)

// SkinTypes lists the catalog skin types in generation order.
var SkinTypes = []SkinType{
	SkinOily,
	SkinDry,
	SkinCombination,
	SkinSensitive,
	SkinNormal,
}

// Concern identifies a skincare issue category driving text selection.
type Concern string

const (
	// ConcernAcne covers breakouts and congestion.
	ConcernAcne Concern = "acne"

	// ConcernPigmentation covers uneven tone and dark spots.
	ConcernPigmentation Concern = "pigmentation"

	// ConcernDullness covers lack of radiance.
	ConcernDullness Concern = "dullness"

	// ConcernDryness covers dehydration and flaking.
	ConcernDryness Concern = "dryness"

	// ConcernRedness covers irritation-prone, reactive skin.
	ConcernRedness Concern = "redness"

	// ConcernTexture covers rough or uneven skin surface.
	ConcernTexture Concern = "texture"

	// ConcernFineLines covers early lines and dehydration wrinkles.
	ConcernFineLines Concern = "fine_lines"

	// ConcernSunProtection covers daily UV protection.
	ConcernSunProtection Concern = "sun_protection"

	// ConcernAny marks a rule that applies regardless of concern.
	ConcernAny Concern = "any"
)

// Concerns lists the catalog concerns in generation order.
var Concerns = []Concern{
	ConcernAcne,
	ConcernPigmentation,
	ConcernDullness,
	ConcernDryness,
	ConcernRedness,
	ConcernTexture,
	ConcernFineLines,
	ConcernSunProtection,
}

// Routine identifies the time-of-day or structural context of a rule.
type Routine string

const (
	// RoutineAM is the morning routine.
	RoutineAM Routine = "am"

	// RoutinePM is the evening routine.
	RoutinePM Routine = "pm"

	// RoutineAny marks a rule independent of time of day.
	RoutineAny Routine = "any"

	// RoutineAMStepOrder marks the morning step-order rule.
	RoutineAMStepOrder Routine = "am_step_order"

	// RoutinePMStepOrder marks the evening step-order rule.
	RoutinePMStepOrder Routine = "pm_step_order"

	// RoutineConsistency marks the routine-consistency rule.
	RoutineConsistency Routine = "consistency"
)

// CatalogRoutines lists the routines enumerated per skin type and
// concern, in generation order.
var CatalogRoutines = []Routine{RoutineAM, RoutinePM}

// Safety identifies one of the fixed safety rule categories.
type Safety string

const (
	// SafetyPatchTest advises patch testing new products.
	SafetyPatchTest Safety = "patch_test"

	// SafetyIntroduceSlowly advises introducing one product at a time.
	SafetyIntroduceSlowly Safety = "introduce_slowly"

	// SafetyAvoidOverExfoliating advises against frequent exfoliation.
	SafetyAvoidOverExfoliating Safety = "avoid_over_exfoliating"

	// SafetyNonMedical states the non-medical scope of the catalog.
	SafetyNonMedical Safety = "non_medical"
)

// SafetyOrder lists the safety categories in generation order.
var SafetyOrder = []Safety{
	SafetyPatchTest,
	SafetyIntroduceSlowly,
	SafetyAvoidOverExfoliating,
	SafetyNonMedical,
}
