package page

import (
	"strings"
	"testing"

	"github.com/Nestorservice/asapfoodtrailer/internal/config"
)

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Version: 1,
		Business: config.Business{
			Name:    "ASAP Food Trailer",
			Phone:   "+12016453364",
			Email:   "sales@example.com",
			City:    "Houston",
			Address: "Houston, TX",
		},
	}
}

func TestHomeCarriesBehaviorContract(t *testing.T) {
	doc := Home(testSite())

	for _, id := range []string{
		"site-header", "menu-toggle", "menu-close", "menu-overlay", "mobile-menu",
		"hero-cta", "stat-trailers", "contact-phone",
	} {
		if doc.ByID(id) == nil {
			t.Fatalf("missing required element %q", id)
		}
	}
	for _, id := range []string{"home", "fleet", "testimonials", "fleet-stats", "about", "contact", "footer"} {
		if doc.SectionByID(id) == nil {
			t.Fatalf("missing required section %q", id)
		}
	}
}

func TestHomeHashLinksResolve(t *testing.T) {
	doc := Home(testSite())
	for _, el := range doc.WithAttr("href") {
		href, _ := el.Attr("href")
		if !strings.HasPrefix(href, "#") {
			continue
		}
		if doc.SectionByID(href) == nil && doc.ByID(href) == nil {
			t.Fatalf("link %q points at missing target %q", el.ID, href)
		}
	}
}

func TestHomeCountersAndImages(t *testing.T) {
	doc := Home(testSite())

	counters := doc.WithAttr("data-count")
	if len(counters) != 4 {
		t.Fatalf("expected 4 counters, got %d", len(counters))
	}
	var liveCounters int
	for _, el := range counters {
		if v, _ := el.Attr("data-count"); v == "0" {
			liveCounters++
		}
	}
	if liveCounters != 1 {
		t.Fatalf("exactly one counter should defer to the live total, got %d", liveCounters)
	}

	images := doc.WithAttr("data-src")
	if len(images) == 0 {
		t.Fatalf("fleet gallery should defer its images")
	}
	for _, img := range images {
		if img.Kind != KindImage {
			t.Fatalf("deferred element %q is %v, want image", img.ID, img.Kind)
		}
		if _, ok := img.Attr("src"); ok {
			t.Fatalf("image %q must not start with a live source", img.ID)
		}
	}
}

func TestHomeMenuLinksMarked(t *testing.T) {
	doc := Home(testSite())
	links := doc.ByClass("menu-link")
	if len(links) != 4 {
		t.Fatalf("expected 4 menu links, got %d", len(links))
	}
	for _, link := range links {
		if href, ok := link.Attr("href"); !ok || !strings.HasPrefix(href, "#") {
			t.Fatalf("menu link %q must target an in-page fragment", link.ID)
		}
	}
}

func TestHomePhoneFieldIsTel(t *testing.T) {
	doc := Home(testSite())
	phone := doc.ByID("contact-phone")
	if kind := phone.Kind; kind != KindInput {
		t.Fatalf("contact-phone kind = %v, want input", kind)
	}
	if typ, _ := phone.Attr("type"); typ != "tel" {
		t.Fatalf("contact-phone type = %q, want tel", typ)
	}
}

func TestHomeReflowed(t *testing.T) {
	doc := Home(testSite())
	if doc.Height() == 0 {
		t.Fatalf("home page must be reflowed")
	}
	contact := doc.SectionByID("contact")
	stats := doc.SectionByID("fleet-stats")
	if contact.Top <= stats.Top {
		t.Fatalf("contact (%d) should lay out below stats (%d)", contact.Top, stats.Top)
	}
	// The deep-scroll controls only make sense on a long page.
	if doc.Height() < 450 {
		t.Fatalf("home page height %d, want a long-scrolling page", doc.Height())
	}
}
