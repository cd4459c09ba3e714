package content

// CivicsCategory groups the federal civics questions.
type CivicsCategory string

const (
	CategoryAmericanGovernment CivicsCategory = "American Government"
	CategoryAmericanHistory    CivicsCategory = "American History"
	CategoryIntegratedCivics   CivicsCategory = "Integrated Civics"
)

// Icon returns the icon tag the UI shows next to the category.
func (c CivicsCategory) Icon() string {
	switch c {
	case CategoryAmericanGovernment:
		return "building.columns"
	case CategoryAmericanHistory:
		return "clock.arrow.circlepath"
	default:
		return "flag"
	}
}

// CivicsQuestion is one of the 100 USCIS naturalization test questions.
type CivicsQuestion struct {
	Id       int
	Question string
	Answer   string
	Category CivicsCategory
}
