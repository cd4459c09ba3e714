package content

import "strconv"

// Chamber identifies the legislative body a legislator serves in.
type Chamber string

const (
	ChamberSDSenate Chamber = "SD Senate"
	ChamberSDHouse  Chamber = "SD House"
	ChamberUSSenate Chamber = "US Senate"
	ChamberUSHouse  Chamber = "US House"
)

// Icon returns the icon tag the UI shows next to the chamber.
func (c Chamber) Icon() string {
	switch c {
	case ChamberSDSenate, ChamberUSSenate:
		return "building.columns"
	default:
		return "person.3"
	}
}

// IsState reports whether the chamber is part of the state legislature.
func (c Chamber) IsState() bool {
	return c == ChamberSDSenate || c == ChamberSDHouse
}

// IsFederal reports whether the chamber is part of Congress.
func (c Chamber) IsFederal() bool {
	return c == ChamberUSSenate || c == ChamberUSHouse
}

// Party is a legislator's party affiliation, abbreviated.
type Party string

const (
	PartyRepublican  Party = "R"
	PartyDemocrat    Party = "D"
	PartyIndependent Party = "I"
)

// FullName spells the party out for display.
func (p Party) FullName() string {
	switch p {
	case PartyRepublican:
		return "Republican"
	case PartyDemocrat:
		return "Democrat"
	case PartyIndependent:
		return "Independent"
	default:
		return string(p)
	}
}

// Legislator is one entry in the legislator directory. District is 0 for
// statewide (US Senate) seats.
type Legislator struct {
	Name     string
	Chamber  Chamber
	District int
	Party    Party
	Email    string
	Phone    string
	Hometown string
}

// DisplayTitle returns the honorific used when listing the legislator.
func (l Legislator) DisplayTitle() string {
	switch l.Chamber {
	case ChamberSDSenate:
		return "Senator"
	case ChamberSDHouse:
		return "Representative"
	case ChamberUSSenate:
		return "U.S. Senator"
	default:
		return "U.S. Representative"
	}
}

// DistrictDisplay renders the district for display. South Dakota's single
// US House seat is at-large.
func (l Legislator) DistrictDisplay() string {
	if l.Chamber == ChamberUSHouse {
		return "At-Large"
	}
	if l.Chamber == ChamberUSSenate {
		return "Statewide"
	}
	return "District " + strconv.Itoa(l.District)
}

// LegislatorsForDistrict returns the state legislators for one district.
func LegislatorsForDistrict(district int) []Legislator {
	var out []Legislator
	for _, l := range StateLegislators {
		if l.District == district {
			out = append(out, l)
		}
	}
	return out
}

// AllLegislators returns the congressional delegation followed by the state
// legislature entries.
func AllLegislators() []Legislator {
	out := make([]Legislator, 0, len(USCongressMembers)+len(StateLegislators))
	out = append(out, USCongressMembers...)
	out = append(out, StateLegislators...)
	return out
}
