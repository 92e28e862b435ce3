// Package mapping holds the declarative field-alias table consulted by the
// entity extractors. Content authors renamed and re-cased database fields
// over the years, so every logical field carries an ordered list of the
// names it has gone by. Centralizing the lists here keeps them testable and
// auditable instead of duplicated per extractor.
package mapping

// Field identifies a logical field independent of how it is spelled in the
// content database.
type Field string

const (
	FieldName          Field = "name"
	FieldIndex         Field = "index"
	FieldArtworkIndex  Field = "artwork_index"
	FieldTimelineIndex Field = "timeline_index"
	FieldPeriod        Field = "period"
	FieldTimeline      Field = "timeline"
	FieldTimelineRel   Field = "timeline_relation"
	FieldDescription   Field = "description"
	FieldDescriptionEN Field = "description_en"
	FieldClass         Field = "class"
	FieldProject       Field = "project"
	FieldExhibition    Field = "exhibition"
	FieldDimension     Field = "dimension"
	FieldArtist        Field = "artist"
	FieldCaption       Field = "caption"
	FieldImage         Field = "image"
	FieldThumbnail     Field = "thumbnail"
	FieldCurrent       Field = "current"
	FieldRelated       Field = "related"
	FieldType          Field = "type"
	FieldContent       Field = "content"
	FieldLink          Field = "link"
	FieldFile          Field = "file"
	FieldTitle         Field = "title"
	FieldRelatedIndex  Field = "related_index"
)

// defaults is the built-in alias table. Order matters: the first alias
// present in a record wins.
var defaults = map[Field][]string{
	FieldName: {
		"Name", "name", "NAME",
		"Title", "title", "TITLE",
	},
	FieldIndex: {
		"Index", "index", "INDEX",
		"Order", "order", "ORDER",
		"Position", "position", "POSITION",
		"Number", "number", "NUMBER",
	},
	FieldArtworkIndex: {
		"Index", "index", "INDEX",
		"Order", "order", "ORDER",
		"Position", "position", "POSITION",
	},
	FieldTimelineIndex: {
		"Timeline-Index", "timeline-index", "TIMELINE-INDEX",
		"Timeline Index", "timeline index", "TIMELINE INDEX",
		"TimelineIndex", "timelineIndex", "TIMELINEINDEX",
	},
	FieldPeriod: {
		"Period", "period", "PERIOD",
		"Date", "date", "DATE",
		"Year", "year", "YEAR",
		"Time", "time", "TIME",
	},
	FieldTimeline: {
		"Timeline", "timeline", "TIMELINE",
		"Date", "date", "DATE",
		"Time", "time", "TIME",
		"Year", "year", "YEAR",
		"Period", "period", "PERIOD",
	},
	FieldTimelineRel: {
		"Timeline", "timeline", "TIMELINE",
	},
	FieldDescription: {
		"Description", "description", "DESCRIPTION",
		"Description EN", "description en", "Description En", "Description en",
	},
	FieldDescriptionEN: {
		"Description EN", "description en", "Description En", "Description en",
		"DESCRIPTION EN", "DescriptionEN", "descriptionEN",
		"Description", "description", "DESCRIPTION",
	},
	FieldClass: {
		"Class", "class", "CLASS",
		"Type", "type", "TYPE",
		"Category", "category", "CATEGORY",
	},
	FieldProject: {
		"Project", "project", "PROJECT",
	},
	FieldExhibition: {
		"Exhibition", "exhibition", "EXHIBITION",
		"Exhibitions", "exhibitions", "EXHIBITIONS",
	},
	FieldDimension: {
		"Dimension", "dimension", "DIMENSION",
		"Size", "size", "SIZE",
		"Dimensions", "dimensions", "DIMENSIONS",
	},
	FieldArtist: {
		"Artist", "artist", "ARTIST",
		"Author", "author", "AUTHOR",
	},
	FieldCaption: {
		"Caption", "caption", "CAPTION",
	},
	FieldImage: {
		"Image", "image", "IMAGE",
	},
	FieldThumbnail: {
		"Thumbnail", "thumbnail", "THUMBNAIL",
	},
	FieldCurrent: {
		"Current", "current", "CURRENT",
	},
	FieldRelated: {
		"Related", "related", "RELATED",
		"Related Text", "related text", "RELATED TEXT",
		"Related DB", "related db", "RELATED DB",
	},
	FieldType: {
		"Type", "type", "TYPE",
		"Category", "category", "CATEGORY",
	},
	FieldContent: {
		"Content", "content", "CONTENT",
	},
	FieldLink: {
		"Link", "link", "LINK",
		"URL", "url", "Url",
		"Website", "website", "WEBSITE",
	},
	FieldFile: {
		"File", "file", "FILE",
		"Filename", "filename", "FILENAME",
		"File Name", "file name", "FILE NAME",
		"Pdf", "pdf", "PDF",
	},
	FieldTitle: {
		"title", "Title", "TITLE",
		"Name", "name", "NAME",
		"이름",
	},
	FieldRelatedIndex: {
		"Index", "index", "INDEX",
		"Order", "order", "ORDER",
		"No", "no", "NO",
	},
}

// Table is an alias table, optionally extended by a site-specific override
// file (see Load).
type Table struct {
	aliases map[Field][]string
}

// Default returns the built-in table.
func Default() *Table {
	return &Table{aliases: defaults}
}

// Aliases returns the ordered alias list for a logical field. Unknown
// fields yield nil.
func (t *Table) Aliases(f Field) []string {
	return t.aliases[f]
}

// Fields returns every logical field the table knows about.
func (t *Table) Fields() []Field {
	out := make([]Field, 0, len(t.aliases))
	for f := range t.aliases {
		out = append(out, f)
	}
	return out
}
