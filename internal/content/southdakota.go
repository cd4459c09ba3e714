package content

// SDCategory groups the South Dakota questions by level of government.
type SDCategory string

const (
	SDCategoryState     SDCategory = "State"
	SDCategoryCounty    SDCategory = "County"
	SDCategoryMunicipal SDCategory = "Municipal"
)

// Icon returns the icon tag the UI shows next to the category.
func (c SDCategory) Icon() string {
	switch c {
	case SDCategoryState:
		return "building.columns"
	case SDCategoryCounty:
		return "map"
	default:
		return "building.2"
	}
}

// SDQuestion is one of the South Dakota state, county and municipal civics
// questions (focused on Pennington County and Rapid City).
type SDQuestion struct {
	Id       int
	Question string
	Answer   string
	Category SDCategory
}
