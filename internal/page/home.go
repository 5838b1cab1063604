package page

import (
	"fmt"

	"github.com/Nestorservice/asapfoodtrailer/internal/config"
)

// Home assembles the dealership landing page for the configured business.
// Behaviors address the result purely through the ids, classes and data
// attributes set here, so this function is the single source of the page's
// markup contract.
func Home(site config.SiteConfig) *Document {
	doc := NewDocument()
	addChrome(doc, site)
	addHero(doc, site)
	addFleet(doc)
	addTestimonials(doc)
	addStats(doc)
	addAbout(doc, site)
	addContact(doc, site)
	addFooter(doc, site)
	doc.Reflow()
	return doc
}

func addChrome(doc *Document, site config.SiteConfig) {
	header := NewElement("site-header", KindText)
	header.Text = site.Business.Name

	toggle := NewElement("menu-toggle", KindButton)
	toggle.Text = "☰"
	closeBtn := NewElement("menu-close", KindButton)
	closeBtn.Text = "✕"
	overlay := NewElement("menu-overlay", KindText)
	panel := NewElement("mobile-menu", KindText)

	doc.AddChrome(header, toggle, closeBtn, overlay, panel)
	doc.AddChrome(
		menuLink("menu-home", "Home", "#home"),
		menuLink("menu-fleet", "Our Fleet", "#fleet"),
		menuLink("menu-stats", "By The Numbers", "#fleet-stats"),
		menuLink("menu-contact", "Contact", "#contact"),
	)
}

func menuLink(id, label, href string) *Element {
	link := NewElement(id, KindLink)
	link.Text = label
	link.SetAttr("href", href)
	link.AddClass("menu-link")
	return link
}

func addHero(doc *Document, site config.SiteConfig) {
	hero := &Section{ID: "home", Title: site.Business.Name}

	tagline := NewElement("hero-tagline", KindText)
	tagline.Text = fmt.Sprintf("Custom food trailers built and delivered from %s.", site.Business.City)
	tagline.SetAttr("data-reveal", "fade-up")

	banner := NewElement("hero-banner", KindImage)
	banner.Text = "Food trailers lined up at the lot"
	banner.Height = 60
	banner.SetAttr("data-src", "/images/hero-lot.jpg")

	cta := NewElement("hero-cta", KindLink)
	cta.Text = "Get A Quote"
	cta.SetAttr("href", "#contact")

	hero.Append(tagline, banner, cta)
	doc.AddSection(hero)
}

func addFleet(doc *Document) {
	fleet := &Section{ID: "fleet", Title: "Our Fleet"}
	models := []struct {
		id, src, caption string
	}{
		{"fleet-img-1", "/images/trailer-bbq.jpg", "16ft BBQ smoker trailer"},
		{"fleet-img-2", "/images/trailer-coffee.jpg", "8ft espresso cart"},
		{"fleet-img-3", "/images/trailer-taco.jpg", "20ft full-kitchen taco truck"},
		{"fleet-img-4", "/images/trailer-dessert.jpg", "12ft dessert trailer"},
		{"fleet-img-5", "/images/trailer-pizza.jpg", "18ft wood-fired pizza trailer"},
		{"fleet-img-6", "/images/trailer-snowcone.jpg", "10ft snow cone stand"},
	}
	for _, m := range models {
		img := NewElement(m.id, KindImage)
		img.Text = m.caption
		img.Height = 60
		img.SetAttr("data-src", m.src)
		img.SetAttr("data-reveal", "fade-up")
		fleet.Append(img)
	}
	doc.AddSection(fleet)
}

func addTestimonials(doc *Document) {
	reviews := &Section{ID: "testimonials", Title: "What Owners Say"}
	quotes := []struct {
		id, text string
	}{
		{"quote-1", "\"Ordered a custom BBQ trailer and it was serving three weeks later.\" - Marcus, Austin"},
		{"quote-2", "\"They handled the permits paperwork with us. Worth every dollar.\" - Dana, San Antonio"},
		{"quote-3", "\"Second truck we've bought here. The build quality holds up.\" - Priya, Dallas"},
	}
	for _, q := range quotes {
		quote := NewElement(q.id, KindText)
		quote.Text = q.text
		quote.Height = 10
		quote.SetAttr("data-reveal", "fade-up")
		reviews.Append(quote)
	}
	doc.AddSection(reviews)
}

func addStats(doc *Document) {
	stats := &Section{ID: "fleet-stats", Title: "By The Numbers"}
	counters := []struct {
		id, label, target string
	}{
		// Trailers in stock is refined live from the backend.
		{"stat-trailers", "Trailers In Stock", "0"},
		{"stat-customers", "Happy Customers", "250"},
		{"stat-years", "Years In Business", "12"},
		{"stat-states", "States Delivered", "35"},
	}
	for _, c := range counters {
		label := NewElement("", KindText)
		label.Text = c.label
		counter := NewElement(c.id, KindCounter)
		counter.SetAttr("data-count", c.target)
		counter.SetAttr("data-reveal", "fade-up")
		stats.Append(label, counter)
	}
	doc.AddSection(stats)
}

func addAbout(doc *Document, site config.SiteConfig) {
	about := &Section{ID: "about", Title: "Who We Are"}

	intro := NewElement("about-intro", KindText)
	intro.Text = fmt.Sprintf("%s builds, stocks and ships concession trailers nationwide from %s.", site.Business.Name, site.Business.City)
	intro.Height = 8
	intro.SetAttr("data-reveal", "fade-up")

	process := NewElement("about-process", KindText)
	process.Text = "Pick a floor plan, we fit it out to your county's health code, you pick it up or we deliver."
	process.Height = 8
	process.SetAttr("data-reveal", "fade-up")

	about.Append(intro, process)
	doc.AddSection(about)
}

func addContact(doc *Document, site config.SiteConfig) {
	contact := &Section{ID: "contact", Title: "Contact Us"}

	name := NewElement("contact-name", KindInput)
	name.SetAttr("placeholder", "Your name")

	phone := NewElement("contact-phone", KindInput)
	phone.SetAttr("type", "tel")
	phone.SetAttr("placeholder", "(555) 555-5555")

	email := NewElement("contact-email", KindInput)
	email.SetAttr("type", "email")
	email.SetAttr("placeholder", "you@example.com")

	message := NewElement("contact-message", KindInput)
	message.SetAttr("placeholder", "Tell us what you're looking for")

	submit := NewElement("contact-submit", KindButton)
	submit.Text = "Send Inquiry"

	direct := NewElement("contact-direct", KindText)
	direct.Text = fmt.Sprintf("Call %s or email %s", site.Business.Phone, site.Business.Email)

	contact.Append(name, phone, email, message, submit, direct)
	doc.AddSection(contact)
}

func addFooter(doc *Document, site config.SiteConfig) {
	footer := &Section{ID: "footer", Title: ""}
	line := NewElement("footer-line", KindText)
	line.Text = fmt.Sprintf("%s · %s", site.Business.Name, site.Business.Address)
	footer.Append(line)

	top := NewElement("footer-top", KindLink)
	top.Text = "Back to top"
	top.SetAttr("href", "#home")
	footer.Append(top)
	doc.AddSection(footer)
}
