package extract

import (
	"reflect"
	"testing"
)

func TestFromHTML_HeadingsBeforeParagraphs(t *testing.T) {
	page := `<!doctype html>
    <html>
      <head><title>Test Page</title></head>
      <body>
        <p>First paragraph.</p>
        <h1>Main Heading</h1>
        <p>Second paragraph.</p>
        <h2>Sub Heading</h2>
      </body>
    </html>`

	doc := FromHTML([]byte(page))
	if doc.Title != "Test Page" {
		t.Fatalf("expected title 'Test Page', got %q", doc.Title)
	}
	want := []string{"Main Heading", "Sub Heading", "First paragraph.", "Second paragraph."}
	if got := doc.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected lines %v, got %v", want, got)
	}
}

func TestFromHTML_HeadingLevelsOneToThreeOnly(t *testing.T) {
	page := `<html><body>
        <h1>One</h1>
        <h3>Three</h3>
        <h4>Four should be ignored</h4>
        <h6>Six should be ignored</h6>
    </body></html>`

	doc := FromHTML([]byte(page))
	want := []string{"One", "Three"}
	if !reflect.DeepEqual(doc.Headings, want) {
		t.Fatalf("expected headings %v, got %v", want, doc.Headings)
	}
}

func TestFromHTML_DropsEmptyAndTrims(t *testing.T) {
	page := `<html><body>
        <h2>   </h2>
        <p>  padded text  </p>
        <p></p>
        <p>
            wrapped
            across lines
        </p>
    </body></html>`

	doc := FromHTML([]byte(page))
	if len(doc.Headings) != 0 {
		t.Fatalf("expected blank heading to be dropped, got %v", doc.Headings)
	}
	want := []string{"padded text", "wrapped across lines"}
	if !reflect.DeepEqual(doc.Paragraphs, want) {
		t.Fatalf("expected paragraphs %v, got %v", want, doc.Paragraphs)
	}
}

func TestFromHTML_NestedMarkupAndScripts(t *testing.T) {
	page := `<html><body>
        <h1>Heading with <em>emphasis</em></h1>
        <p>Text with <a href="/x">a link</a> inside.<script>var x = 1;</script></p>
    </body></html>`

	doc := FromHTML([]byte(page))
	if len(doc.Headings) != 1 || doc.Headings[0] != "Heading with emphasis" {
		t.Fatalf("unexpected headings: %v", doc.Headings)
	}
	if len(doc.Paragraphs) != 1 || doc.Paragraphs[0] != "Text with a link inside." {
		t.Fatalf("unexpected paragraphs: %v", doc.Paragraphs)
	}
}

func TestFromHTML_NoContent(t *testing.T) {
	doc := FromHTML([]byte(`<html><body><div>div text is not collected</div></body></html>`))
	if !doc.Empty() {
		t.Fatalf("expected empty document, got %v", doc.Lines())
	}
	if doc.Text() != "" {
		t.Fatalf("expected empty text, got %q", doc.Text())
	}
}

func TestFromHTML_TextJoinsWithNewlines(t *testing.T) {
	page := `<html><body><h1>Title</h1><p>Some paragraph text.</p></body></html>`
	doc := FromHTML([]byte(page))
	if doc.Text() != "Title\nSome paragraph text." {
		t.Fatalf("unexpected text: %q", doc.Text())
	}
}
