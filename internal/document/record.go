// Package document defines the structured document record and assembles it
// from cleaned text, filename-derived guesses and caller-supplied metadata.
package document

import (
	"fmt"

	"github.com/foliokit/folio/internal/chapters"
)

// Publication types understood by the builder. The type tag determines which
// optional sections exist on the record.
const (
	TypeBook            = "book"
	TypeArticle         = "article"
	TypeSerial          = "serial"
	TypeMagazine        = "magazine"
	TypeJournal         = "journal"
	TypeNewspaper       = "newspaper"
	TypeThesis          = "thesis"
	TypeReport          = "report"
	TypeConferencePaper = "conference_paper"
	TypeChapter         = "chapter"
	TypePreprint        = "preprint"
	TypeOther           = "other"
)

// PublicationTypes lists all supported publication type tags.
var PublicationTypes = []string{
	TypeBook, TypeArticle, TypeSerial, TypeMagazine, TypeJournal, TypeNewspaper,
	TypeThesis, TypeReport, TypeConferencePaper, TypeChapter, TypePreprint, TypeOther,
}

// Author is a single contributor entry.
type Author struct {
	Name string `json:"name"`
}

// Data holds the record's core bibliographic identity.
type Data struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	OriginalTitle   string `json:"original_title"`
	PublicationType string `json:"publication_type"`
	Language        string `json:"language"`
	Abstract        string `json:"abstract"`
	Description     string `json:"description"`
	Year            *int   `json:"year"`
}

// Authorship lists the people behind the document.
type Authorship struct {
	Authors      []Author `json:"authors"`
	Editors      []Author `json:"editors"`
	Contributors []Author `json:"contributors"`
}

// PageRange describes the page span of the publication.
type PageRange struct {
	Start *int   `json:"start"`
	End   *int   `json:"end"`
	Total *int   `json:"total"`
	Range string `json:"range"`
}

// PublicationDetails holds publisher and issue information.
type PublicationDetails struct {
	Publisher          string    `json:"publisher"`
	Imprint            string    `json:"imprint"`
	PlaceOfPublication string    `json:"place_of_publication"`
	PublicationDate    string    `json:"publication_date"`
	Edition            string    `json:"edition"`
	Version            string    `json:"version"`
	Volume             string    `json:"volume"`
	Issue              string    `json:"issue"`
	Number             string    `json:"number"`
	Pages              PageRange `json:"pages"`
}

// Identifiers holds external and local identifiers. ISBN fields exist only
// for books; they are pointers so they serialize for books (as empty strings
// when unknown) and disappear entirely for other types.
type Identifiers struct {
	DOI     string  `json:"doi"`
	PMID    string  `json:"pmid"`
	ArxivID string  `json:"arxiv_id"`
	Handle  string  `json:"handle"`
	URL     string  `json:"url"`
	URN     string  `json:"urn"`
	DocID   string  `json:"doc_id"`
	LocalID string  `json:"local_id"`
	ISBN    *string `json:"isbn,omitempty"`
	ISBN13  *string `json:"isbn13,omitempty"`
}

// Classification holds subject indexing data.
type Classification struct {
	Subjects     []string `json:"subjects"`
	Keywords     []string `json:"keywords"`
	Tags         []string `json:"tags"`
	Genre        string   `json:"genre"`
	DeweyDecimal string   `json:"dewey_decimal"`
	LCC          string   `json:"lcc"`
	MeshTerms    []string `json:"mesh_terms"`
}

// PhysicalFormat describes the physical artifact, if any.
type PhysicalFormat struct {
	Format     string `json:"format"`
	Dimensions string `json:"dimensions"`
	Weight     string `json:"weight"`
	Binding    string `json:"binding"`
}

// DigitalFormat describes the source file.
type DigitalFormat struct {
	Filename   string `json:"filename"`
	FileFormat string `json:"file_format"`
	FileSize   int64  `json:"file_size"`
	MimeType   string `json:"mime_type"`
}

// TOCEntry is one table-of-contents row, derived 1:1 from chapters.
type TOCEntry struct {
	Level     int    `json:"level"`
	Title     string `json:"title"`
	SectionID string `json:"section_id"`
}

// Content holds the document body. Chapters and FullText are mutually
// exclusive in the populated state: SetChapters clears FullText.
type Content struct {
	TableOfContents []TOCEntry         `json:"table_of_contents"`
	Chapters        []chapters.Chapter `json:"chapters"`
	Sections        []string           `json:"sections"`
	FullText        string             `json:"full_text"`
}

// RightsLicensing holds copyright and usage information.
type RightsLicensing struct {
	Copyright       string `json:"copyright"`
	License         string `json:"license"`
	RightsStatement string `json:"rights_statement"`
	OpenAccess      bool   `json:"open_access"`
	UsageRights     string `json:"usage_rights"`
}

// CitationFormats holds pre-rendered citation strings per style.
type CitationFormats struct {
	APA     string `json:"apa"`
	MLA     string `json:"mla"`
	Chicago string `json:"chicago"`
	BibTeX  string `json:"bibtex"`
}

// CitationsReferences holds bibliography and citation data.
type CitationsReferences struct {
	Bibliography    []string        `json:"bibliography"`
	CitedByCount    int             `json:"cited_by_count"`
	ReferencesCount int             `json:"references_count"`
	CitationFormats CitationFormats `json:"citation_formats"`
}

// SeriesInfo exists for books that belong to a series.
type SeriesInfo struct {
	SeriesTitle  string `json:"series_title"`
	SeriesNumber string `json:"series_number"`
	SeriesEditor string `json:"series_editor"`
	Collection   string `json:"collection"`
}

// JournalInfo exists for article-like types.
type JournalInfo struct {
	JournalTitle        string `json:"journal_title"`
	JournalAbbreviation string `json:"journal_abbreviation"`
	ISSN                string `json:"issn"`
	EISSN               string `json:"eissn"`
}

// AcademicInfo exists for theses.
type AcademicInfo struct {
	Institution      string   `json:"institution"`
	Department       string   `json:"department"`
	DegreeType       string   `json:"degree_type"`
	Advisor          string   `json:"advisor"`
	CommitteeMembers []string `json:"committee_members"`
}

// OrganizationInfo exists for reports and conference papers.
type OrganizationInfo struct {
	Organization   string `json:"organization"`
	Department     string `json:"department"`
	ReportNumber   string `json:"report_number"`
	ContractNumber string `json:"contract_number"`
}

// ConferenceInfo exists for conference papers.
type ConferenceInfo struct {
	ConferenceName     string `json:"conference_name"`
	ConferenceLocation string `json:"conference_location"`
	ConferenceDate     string `json:"conference_date"`
	ProceedingsTitle   string `json:"proceedings_title"`
}

// Document is the full structured record for one converted file. Field order
// here is serialization order.
type Document struct {
	Data                Data                `json:"data"`
	Authorship          Authorship          `json:"authorship"`
	PublicationDetails  PublicationDetails  `json:"publication_details"`
	Identifiers         Identifiers         `json:"identifiers"`
	Classification      Classification      `json:"classification"`
	PhysicalFormat      PhysicalFormat      `json:"physical_format"`
	DigitalFormat       DigitalFormat       `json:"digital_format"`
	Content             Content             `json:"content"`
	RightsLicensing     RightsLicensing     `json:"rights_licensing"`
	CitationsReferences CitationsReferences `json:"citations_references"`

	SeriesInfo       *SeriesInfo       `json:"series_info,omitempty"`
	JournalInfo      *JournalInfo      `json:"journal_info,omitempty"`
	AcademicInfo     *AcademicInfo     `json:"academic_info,omitempty"`
	OrganizationInfo *OrganizationInfo `json:"organization_info,omitempty"`
	ConferenceInfo   *ConferenceInfo   `json:"conference_info,omitempty"`
}

// Skeleton creates an empty record shaped for the given publication type.
// Slices are initialized so they serialize as [] rather than null.
func Skeleton(pubType string) *Document {
	doc := &Document{
		Data: Data{
			PublicationType: pubType,
			Language:        "en",
		},
		Authorship: Authorship{
			Authors:      []Author{},
			Editors:      []Author{},
			Contributors: []Author{},
		},
		Classification: Classification{
			Subjects:  []string{},
			Keywords:  []string{},
			Tags:      []string{},
			MeshTerms: []string{},
		},
		Content: Content{
			TableOfContents: []TOCEntry{},
			Chapters:        []chapters.Chapter{},
			Sections:        []string{},
		},
		CitationsReferences: CitationsReferences{
			Bibliography: []string{},
		},
	}

	switch pubType {
	case TypeBook:
		empty := ""
		empty13 := ""
		doc.Identifiers.ISBN = &empty
		doc.Identifiers.ISBN13 = &empty13
		doc.SeriesInfo = &SeriesInfo{}
	case TypeArticle, TypeJournal, TypeMagazine:
		doc.JournalInfo = &JournalInfo{}
	case TypeThesis:
		doc.AcademicInfo = &AcademicInfo{CommitteeMembers: []string{}}
	case TypeReport, TypeConferencePaper:
		doc.OrganizationInfo = &OrganizationInfo{}
		if pubType == TypeConferencePaper {
			doc.ConferenceInfo = &ConferenceInfo{}
		}
	}

	return doc
}

// SetChapters installs segmented chapters on the record and derives the table
// of contents from them. Full text is cleared: chapters and full_text are
// mutually exclusive once populated. A nil or empty slice is a no-op.
func (d *Document) SetChapters(chs []chapters.Chapter) {
	if len(chs) == 0 {
		return
	}
	d.Content.Chapters = chs
	toc := make([]TOCEntry, len(chs))
	for i, ch := range chs {
		toc[i] = TOCEntry{
			Level:     1,
			Title:     ch.Title,
			SectionID: fmt.Sprintf("ch-%d", i+1),
		}
	}
	d.Content.TableOfContents = toc
	d.Content.FullText = ""
}
