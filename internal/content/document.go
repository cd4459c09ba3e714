package content

// Document is a founding document shown in the Documents tab. Ids are stable
// slugs; bookmark rows in the store reference them.
type Document struct {
	Id       string
	Title    string
	Subtitle string
	Year     int
	Category string
	Icon     string
	Content  string
}

// DocumentById returns the document with the given id from the reference
// table, if present.
func DocumentById(id string) (Document, bool) {
	for _, d := range Documents {
		if d.Id == id {
			return d, true
		}
	}
	return Document{}, false
}
