package scaffold

import (
	"strings"
	"testing"
)

const wantSampleSource = `import {LanguageCode, SourceInfo, TagType} from "paperback-extensions-common";
import {Madara} from '../Madara'

const SAMPLE_DOMAIN = "https://sample.example"

export const SampleInfo: SourceInfo = {
    version: '1.0.0',
    name: 'Sample',
    description: 'Extension that pulls manga from Sample',
    author: 'Alice',
    authorWebsite: 'https://github.com/alice-gh',
    icon: "cover.png",
    hentaiSource: false,
    websiteBaseURL: SAMPLE_DOMAIN,
    sourceTags: [
        {
            text: "Notifications",
            type: TagType.GREEN
        }
    ]
}

export class Sample extends Madara {
    baseUrl: string = SAMPLE_DOMAIN
    languageCode: LanguageCode = LanguageCode.ENGLISH
}
`

func TestRenderSourceExact(t *testing.T) {
	got, err := RenderSource(NewSourceData("Sample", "https://sample.example/", "cover.png", "Alice", "alice-gh"))
	if err != nil {
		t.Fatalf("RenderSource() error: %v", err)
	}
	if got != wantSampleSource {
		t.Errorf("RenderSource() mismatch\n--- got ---\n%s\n--- want ---\n%s", got, wantSampleSource)
	}
}

func TestRenderSourceDeterministic(t *testing.T) {
	data := NewSourceData("Foo", "https://x.com", "icon.png", "Alice", "alice")

	first, err := RenderSource(data)
	if err != nil {
		t.Fatalf("RenderSource() error: %v", err)
	}
	second, err := RenderSource(NewSourceData("Foo", "https://x.com", "icon.png", "Alice", "alice"))
	if err != nil {
		t.Fatalf("RenderSource() error: %v", err)
	}
	if first != second {
		t.Error("rendering identical inputs produced different output")
	}
}

func TestRenderSourceTrailingSlash(t *testing.T) {
	withSlash, err := RenderSource(NewSourceData("Foo", "https://x.com/", "icon.png", "Alice", "alice"))
	if err != nil {
		t.Fatal(err)
	}
	without, err := RenderSource(NewSourceData("Foo", "https://x.com", "icon.png", "Alice", "alice"))
	if err != nil {
		t.Fatal(err)
	}
	if withSlash != without {
		t.Error("trailing slash should not change the rendered source")
	}
	assertContains(t, without, `const FOO_DOMAIN = "https://x.com"`)
}

func TestRenderSourceNames(t *testing.T) {
	got, err := RenderSource(NewSourceData("Foo", "https://x.com", "icon.png", "Alice", "alice"))
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, got, "FOO_DOMAIN")
	assertContains(t, got, "export class Foo extends Madara")
	assertContains(t, got, "export const FooInfo: SourceInfo")
	assertContains(t, got, "authorWebsite: 'https://github.com/alice'")
	assertContains(t, got, `icon: "icon.png"`)
	assertContains(t, got, "version: '1.0.0'")
}

func TestRenderTest(t *testing.T) {
	got, err := RenderTest(&TestData{Name: "Foo", MangaID: "123", SearchTerm: "bar"})
	if err != nil {
		t.Fatalf("RenderTest() error: %v", err)
	}

	assertContains(t, got, `"123"`)
	assertContains(t, got, `'bar'`)
	assertContains(t, got, "describe('Foo Tests', function () {")
	assertContains(t, got, "import { Foo } from '../Foo/Foo'")
	assertContains(t, got, "var source: Madara = new Foo(cheerio);")
	assertContains(t, got, "console.log(`Could not automatically retrieve the numeric id for \"${mangaId}\". Try entering it manually.`)")

	if !strings.HasSuffix(got, "\n})") {
		t.Errorf("test file should end with the closing describe, got %q", got[len(got)-10:])
	}
}

func TestRenderTestAssertionOrder(t *testing.T) {
	got, err := RenderTest(&TestData{Name: "Foo", MangaID: "123", SearchTerm: "bar"})
	if err != nil {
		t.Fatal(err)
	}

	order := []string{
		`it("Retrieve Manga Details"`,
		`it("Get Chapters"`,
		`it("Get Chapter Details"`,
		`it("Testing search"`,
		`it("Testing Home-Page aquisition"`,
		`it("Testing home page results for latest titles"`,
		`it("Testing Notifications"`,
		`it("Testing get tags"`,
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(got, marker)
		if idx < 0 {
			t.Fatalf("missing %s", marker)
		}
		if idx < last {
			t.Errorf("%s is out of order", marker)
		}
		last = idx
	}
}

func TestDomainConst(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Foo", "FOO_DOMAIN"},
		{"MangaKakalot", "MANGAKAKALOT_DOMAIN"},
		{"Manga18fx", "MANGA18FX_DOMAIN"},
		{"Straße", "STRASSE_DOMAIN"},
	}

	for _, tt := range tests {
		if got := DomainConst(tt.name); got != tt.want {
			t.Errorf("DomainConst(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://x.com", "https://x.com"},
		{"https://x.com/", "https://x.com"},
		{"https://x.com//", "https://x.com/"},
		{"  https://x.com/ ", "https://x.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeBaseURL(tt.in); got != tt.want {
			t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}
