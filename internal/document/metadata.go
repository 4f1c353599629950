package document

// Overlay carries caller-supplied bibliographic fields shared by a whole
// batch. A zero-value field means "not supplied" and leaves the
// filename-derived guess in place; a set field replaces it unconditionally.
type Overlay struct {
	Title           string
	Author          string // comma-separated author names
	Publisher       string
	PublicationDate string // ISO 8601 date
	Year            *int
	Language        string
	Series          string
	Journal         string
	Volume          string
	Issue           string
	ISBN            string
	Edition         string
	Subjects        string // comma-separated subjects/keywords
}

// apply copies the overlay's set fields onto the record. Type-conditional
// fields (series, journal, isbn) only land when the record's publication type
// gives them a home.
func (o *Overlay) apply(doc *Document) {
	if o.Title != "" {
		doc.Data.Title = o.Title
	}
	if o.Author != "" {
		doc.Authorship.Authors = ParseAuthors(o.Author)
	}
	if o.Publisher != "" {
		doc.PublicationDetails.Publisher = o.Publisher
	}
	if o.PublicationDate != "" {
		doc.PublicationDetails.PublicationDate = o.PublicationDate
	}
	if o.Year != nil {
		// Overrides any year parsed from the filename.
		year := *o.Year
		doc.Data.Year = &year
	}
	if o.Language != "" {
		doc.Data.Language = o.Language
	}
	if o.Edition != "" {
		doc.PublicationDetails.Edition = o.Edition
	}
	if o.Series != "" && doc.SeriesInfo != nil {
		doc.SeriesInfo.SeriesTitle = o.Series
	}
	if o.Journal != "" && doc.JournalInfo != nil {
		doc.JournalInfo.JournalTitle = o.Journal
	}
	if o.Volume != "" {
		doc.PublicationDetails.Volume = o.Volume
	}
	if o.Issue != "" {
		doc.PublicationDetails.Issue = o.Issue
	}
	if o.ISBN != "" && doc.Identifiers.ISBN != nil {
		isbn := o.ISBN
		doc.Identifiers.ISBN = &isbn
	}
	if o.Subjects != "" {
		subjects := ParseSubjects(o.Subjects)
		doc.Classification.Subjects = subjects
		// Subjects double as keywords.
		doc.Classification.Keywords = append([]string{}, subjects...)
	}
}
