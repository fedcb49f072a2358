package transform

// Alias tables are ordered configuration data, not logic: the one part of
// the system expected to change with external schema drift. Order matters —
// the resolver returns the first non-blank match, so the most specific
// historical key comes first and the generic fallback last.

// bookAliases covers the books collection. The long original-language title
// key predates the schema cleanup that introduced the short names.
var bookAliases = struct {
	title       []string
	author      []string
	year        []string
	description []string
	tags        []string
	link        []string
	cover       []string
}{
	title:       []string{"שם הספר המלא בשפת המקור", "שם הספר", "שם", "Name", "Title"},
	author:      []string{"מחבר/ת", "מחבר", "Author"},
	year:        []string{"שנת הוצאה", "שנה", "Year"},
	description: []string{"תיאור", "Description"},
	tags:        []string{"תגיות", "נושאים", "Tags"},
	link:        []string{"קישור", "Link", "URL"},
	cover:       []string{"עטיפה", "תמונה", "Cover", "Image"},
}

// designerAliases has one variant per data source: the secondary hall of
// fame source was provisioned later with English field names.
var designerAliases = [2]struct {
	name        []string
	description []string
	fields      []string
	styles      []string
	era         []string
	link        []string
	image       []string
}{
	{
		name:        []string{"שם", "שם המעצב", "Name"},
		description: []string{"תיאור", "אודות", "Description"},
		fields:      []string{"תחומים", "תחום", "Fields"},
		styles:      []string{"סגנונות", "סגנון", "Styles"},
		era:         []string{"תקופת פעילות", "תקופה", "Era"},
		link:        []string{"קישור", "Link"},
		image:       []string{"תמונה", "Image"},
	},
	{
		name:        []string{"Name", "Designer", "שם"},
		description: []string{"Description", "About", "תיאור"},
		fields:      []string{"Fields", "Field", "תחומים"},
		styles:      []string{"Styles", "Style", "סגנונות"},
		era:         []string{"Era", "Active Years", "תקופה"},
		link:        []string{"Link", "Website", "קישור"},
		image:       []string{"Image", "Photo", "תמונה"},
	},
}

// museumAliases is the widest table (up to five keys per field) because the
// museum collection's schema changed most often, across two languages.
var museumAliases = struct {
	name        []string
	description []string
	country     []string
	entryType   []string
	tags        []string
	era         []string
	famousWork  []string
	quote       []string
	link        []string
	image       []string
}{
	name:        []string{"שם המעצב/ת", "שם המעצב", "שם מלא", "שם", "Name"},
	description: []string{"ביוגרפיה", "אודות", "תיאור", "Description", "Bio"},
	country:     []string{"מדינה", "ארץ מוצא", "מוצא", "Country", "Origin"},
	entryType:   []string{"סוג", "קטגוריה", "תחום", "Type", "Category"},
	tags:        []string{"תגיות", "נושאים", "מילות מפתח", "Tags", "Keywords"},
	era:         []string{"תקופת פעילות", "שנות פעילות", "תקופה", "Era", "Period"},
	famousWork:  []string{"עבודה מפורסמת", "עבודות בולטות", "יצירות", "Famous Work", "Notable Works"},
	quote:       []string{"ציטוט", "משפט", "Quote"},
	link:        []string{"קישור", "אתר", "Link", "Website"},
	image:       []string{"תמונה", "דיוקן", "Image", "Photo"},
}

// resourceAliases is the narrowest table: the resources schema never
// drifted, so each field has its single canonical key.
var resourceAliases = struct {
	name        []string
	description []string
	types       []string
	tags        []string
	link        []string
	pricing     []string
	image       []string
}{
	name:        []string{"Name"},
	description: []string{"Description"},
	types:       []string{"Type"},
	tags:        []string{"Tags"},
	link:        []string{"Link"},
	pricing:     []string{"Pricing"},
	image:       []string{"Image"},
}
