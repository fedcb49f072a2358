package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapidesign/Index-Design-sub000/internal/notion"
)

func titleProp(text string) notion.PropertyValue {
	return notion.PropertyValue{
		Type:  notion.TypeTitle,
		Title: []notion.RichText{{PlainText: text}},
	}
}

func textProp(text string) notion.PropertyValue {
	return notion.PropertyValue{
		Type:     notion.TypeRichText,
		RichText: []notion.RichText{{PlainText: text}},
	}
}

func multiSelectProp(names ...string) notion.PropertyValue {
	opts := make([]notion.SelectOption, len(names))
	for i, name := range names {
		opts[i] = notion.SelectOption{Name: name}
	}
	return notion.PropertyValue{Type: notion.TypeMultiSelect, MultiSelect: opts}
}

func urlProp(url string) notion.PropertyValue {
	return notion.PropertyValue{Type: notion.TypeURL, URL: url}
}

func filesProp(url string) notion.PropertyValue {
	return notion.PropertyValue{
		Type:  notion.TypeFiles,
		Files: []notion.File{{External: &notion.ExternalFile{URL: url}}},
	}
}

func TestResolveText(t *testing.T) {
	props := map[string]notion.PropertyValue{
		"שם":   titleProp("  מילון   עיצוב "),
		"Name": titleProp("Design Lexicon"),
		"ריק":  textProp("   "),
	}

	t.Run("first candidate wins", func(t *testing.T) {
		assert.Equal(t, "מילון עיצוב", ResolveText(props, []string{"שם", "Name"}))
	})
	t.Run("blank values are skipped", func(t *testing.T) {
		assert.Equal(t, "Design Lexicon", ResolveText(props, []string{"ריק", "Name"}))
	})
	t.Run("no candidate present", func(t *testing.T) {
		assert.Equal(t, "", ResolveText(props, []string{"Title"}))
	})
}

func TestResolveTagList(t *testing.T) {
	t.Run("native multi select", func(t *testing.T) {
		props := map[string]notion.PropertyValue{
			"תגיות": multiSelectProp("טיפוגרפיה", "מיתוג"),
		}
		assert.Equal(t, []string{"טיפוגרפיה", "מיתוג"}, ResolveTagList(props, []string{"תגיות", "Tags"}))
	})

	t.Run("delimited text fallback", func(t *testing.T) {
		props := map[string]notion.PropertyValue{
			"Tags": textProp("posters; logos וגם stamps"),
		}
		assert.Equal(t, []string{"posters", "logos", "stamps"}, ResolveTagList(props, []string{"תגיות", "Tags"}))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, ResolveTagList(map[string]notion.PropertyValue{}, []string{"Tags"}))
	})
}

func TestResolveURL(t *testing.T) {
	props := map[string]notion.PropertyValue{
		"קישור": textProp("https://example.org/item"),
		"Link":  urlProp("https://example.org/canonical"),
	}
	t.Run("pasted link in text property", func(t *testing.T) {
		assert.Equal(t, "https://example.org/item", ResolveURL(props, []string{"קישור", "Link"}))
	})
	t.Run("plain text is not a url", func(t *testing.T) {
		assert.Equal(t, "", ResolveURL(map[string]notion.PropertyValue{
			"Link": textProp("see the website"),
		}, []string{"Link"}))
	})
}

func TestBookTransform(t *testing.T) {
	page := notion.Page{
		ID: "page-1",
		Properties: map[string]notion.PropertyValue{
			"שם הספר המלא בשפת המקור": titleProp("The Design of Everyday Things"),
			"מחבר/ת":    textProp("Don Norman"),
			"שנת הוצאה": textProp("1988"),
			"תיאור":     textProp("על עיצוב שמכבד את המשתמש"),
			"תגיות":     multiSelectProp("UX", "תעשייתי"),
			"קישור":     urlProp("https://example.org/doet"),
			"עטיפה":     filesProp("https://img.example.org/doet.jpg"),
		},
	}

	book := Book(page)
	require.NotNil(t, book)
	assert.Equal(t, "page-1", book.ID)
	assert.Equal(t, "The Design of Everyday Things", book.Title)
	assert.Equal(t, "Don Norman", book.Author)
	assert.Equal(t, "1988", book.Year)
	assert.Equal(t, []string{"UX", "תעשייתי"}, book.Tags)
	assert.Equal(t, "https://example.org/doet", book.Link)
	assert.Equal(t, "https://img.example.org/doet.jpg", book.CoverURL)
}

func TestBookTransformNoTitle(t *testing.T) {
	page := notion.Page{
		ID: "page-2",
		Properties: map[string]notion.PropertyValue{
			"מחבר": textProp("אלמוני"),
		},
	}
	assert.Nil(t, Book(page))
}

func TestDesignerTransform(t *testing.T) {
	page := notion.Page{
		ID: "designer-1",
		Properties: map[string]notion.PropertyValue{
			"שם":           titleProp("יוסי כהן (Yossi Cohen)"),
			"תיאור":        textProp("מעצב גרפי"),
			"תחומים":       multiSelectProp("כרזות"),
			"סגנונות":      multiSelectProp("מודרניזם"),
			"תקופת פעילות": textProp("שנות ה-50 עד ה-90"),
			"תמונה":        filesProp("https://img.example.org/cohen.jpg"),
		},
	}

	d := Designer(page, 0)
	require.NotNil(t, d)
	assert.Equal(t, "יוסי כהן (Yossi Cohen)", d.Name)
	assert.Equal(t, "יוסי כהן", d.NameHe)
	assert.Equal(t, "Yossi Cohen", d.NameEn)
	require.NotNil(t, d.DecadeStart)
	require.NotNil(t, d.DecadeEnd)
	assert.Equal(t, 1950, *d.DecadeStart)
	assert.Equal(t, 1990, *d.DecadeEnd)
	assert.Equal(t, []string{"כרזות"}, d.Fields)
	assert.Equal(t, "https://img.example.org/cohen.jpg", d.ImageURL)
}

func TestDesignerTransformSecondarySource(t *testing.T) {
	page := notion.Page{
		ID: "designer-2",
		Properties: map[string]notion.PropertyValue{
			"Name":    titleProp("Paul Rand"),
			"Era":     textProp("1940-2010"),
			"Website": urlProp("https://example.org/rand"),
		},
	}

	d := Designer(page, 1)
	require.NotNil(t, d)
	assert.Equal(t, "Paul Rand", d.NameEn)
	assert.Equal(t, "", d.NameHe)
	assert.Equal(t, "https://example.org/rand", d.Link)

	t.Run("out of range source falls back to primary aliases", func(t *testing.T) {
		d := Designer(page, 7)
		require.NotNil(t, d)
		assert.Equal(t, "Paul Rand", d.NameEn)
	})
}

func TestMuseumEntryTransform(t *testing.T) {
	page := notion.Page{
		ID: "museum-1",
		Properties: map[string]notion.PropertyValue{
			"שם המעצב/ת":   titleProp("דוד טרטקובר"),
			"ביוגרפיה":     textProp("חתן פרס ישראל לעיצוב"),
			"מדינה":        textProp("ישראל"),
			"סוג":          multiSelectProp("עיצוב גרפי"),
			"תקופת פעילות": textProp("שנות ה-2010 עד היום"),
			"עבודה מפורסמת": textProp("שלום חבר"),
		},
	}

	m := MuseumEntry(page)
	require.NotNil(t, m)
	assert.Equal(t, "דוד טרטקובר", m.NameHe)
	assert.Equal(t, "ישראל", m.Country)
	assert.Equal(t, "שלום חבר", m.FamousWork)
	assert.Equal(t, []string{"שנות ה-2010 עד היום"}, m.Era)
}

func TestResourceTransform(t *testing.T) {
	page := notion.Page{
		ID: "resource-1",
		Properties: map[string]notion.PropertyValue{
			"Name":        titleProp("Google Fonts"),
			"Description": textProp("ספריית גופנים חופשיים"),
			"Type":        multiSelectProp("Fonts"),
			"Pricing":     textProp("Free"),
			"Link":        urlProp("https://fonts.google.com"),
		},
	}

	r := Resource(page)
	require.NotNil(t, r)
	assert.Equal(t, "Google Fonts", r.Name)
	assert.Equal(t, []string{"Fonts"}, r.Types)
	assert.Equal(t, "Free", r.Pricing)
}
