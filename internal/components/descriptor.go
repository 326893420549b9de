// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package components holds the descriptive catalog of renderable UI
// components and the prop normalizer that fills defaults into raw,
// possibly incomplete prop objects. The catalog executes nothing; it is
// consulted to know what each component needs.
package components

// Prop type tags used by the normalizer.
const (
	TypeString = "string"
	TypeNumber = "number"
	TypeBool   = "bool"
	TypeList   = "list"
)

// PlaceholderImageURL is the stand-in used wherever an image prop has no
// caller-provided value.
const PlaceholderImageURL = "https://placehold.co/800x600?text=Image"

// PropSpec declares one prop of a component: its type tag, whether it is
// required, and the default used when the caller omits it. For list props,
// Item declares the per-element object shape.
type PropSpec struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Required    bool       `json:"required"`
	Default     any        `json:"default"`
	Description string     `json:"description,omitempty"`
	Item        []PropSpec `json:"item,omitempty"`
}

// Descriptor is the catalog record for one component type.
type Descriptor struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Props       []PropSpec `json:"props"`
	Variations  []string   `json:"variations,omitempty"`
	Industries  []string   `json:"industries,omitempty"`
	MinImages   int        `json:"minImages,omitempty"`
}

func str(name string, required bool, def, desc string) PropSpec {
	return PropSpec{Name: name, Type: TypeString, Required: required, Default: def, Description: desc}
}

func list(name string, def []any, desc string, item ...PropSpec) PropSpec {
	return PropSpec{Name: name, Type: TypeList, Required: true, Default: def, Description: desc, Item: item}
}

// descriptors is the component catalog in declaration order.
var descriptors = []Descriptor{
	{
		Name:        "Header",
		Category:    "navigation",
		Description: "Top navigation bar with logo text and menu links.",
		Props: []PropSpec{
			str("logoText", true, "Your Business", "Brand name shown top-left."),
			list("menu", []any{
				map[string]any{"label": "Home", "link": "#home"},
				map[string]any{"label": "About", "link": "#about"},
				map[string]any{"label": "Contact", "link": "#contact"},
			}, "Navigation entries.",
				str("label", true, "Link", ""),
				str("link", true, "#", ""),
			),
			str("ctaText", false, "Get Started", "Optional header call-to-action."),
		},
		Variations: []string{"transparent", "solid", "centered"},
	},
	{
		Name:        "HeroSection",
		Category:    "hero",
		Description: "Full-width opening band with headline and primary CTA.",
		Props: []PropSpec{
			str("headline", true, "Welcome to our website", "Main headline."),
			str("subheadline", true, "We're glad you're here.", "Supporting line under the headline."),
			str("ctaText", true, "Learn more", "Primary button label."),
			str("ctaLink", false, "#contact", ""),
			str("imageUrl", false, PlaceholderImageURL, "Background or side image."),
		},
		Variations: []string{"centered", "split", "full-bleed"},
		MinImages:  1,
	},
	{
		Name:        "FeaturesSection",
		Category:    "content",
		Description: "Grid of product or service highlights.",
		Props: []PropSpec{
			str("title", true, "Why choose us", ""),
			list("features", []any{
				map[string]any{"title": "Quality first", "description": "We sweat the details so you don't have to.", "icon": "star"},
				map[string]any{"title": "Fast turnaround", "description": "Quick responses and quicker results.", "icon": "zap"},
				map[string]any{"title": "Fair pricing", "description": "Clear quotes with no surprises.", "icon": "tag"},
			}, "Feature cards.",
				str("title", true, "Feature", ""),
				str("description", true, "A short description of this feature.", ""),
				str("icon", false, "check", ""),
			),
		},
		Variations: []string{"grid", "list", "alternating"},
	},
	{
		Name:        "AboutSection",
		Category:    "content",
		Description: "Narrative block introducing the business.",
		Props: []PropSpec{
			str("title", true, "About us", ""),
			str("body", true, "We are a dedicated team committed to serving our customers well.", ""),
			str("imageUrl", false, PlaceholderImageURL, ""),
		},
		MinImages: 1,
	},
	{
		Name:        "ServicesSection",
		Category:    "content",
		Description: "General-purpose list of offered services.",
		Props: []PropSpec{
			str("title", true, "Our services", ""),
			list("services", []any{
				map[string]any{"name": "Consulting", "description": "Expert guidance tailored to your goals."},
				map[string]any{"name": "Support", "description": "Help when you need it, from people who care."},
			}, "Service cards.",
				str("name", true, "Service", ""),
				str("description", true, "A short description of this service.", ""),
			),
		},
	},
	{
		Name:        "MenuSection",
		Category:    "industry",
		Description: "Restaurant menu with dishes and prices.",
		Props: []PropSpec{
			str("title", true, "Our menu", ""),
			list("items", []any{
				map[string]any{"name": "House Special", "description": "Chef's seasonal favorite.", "price": "$18"},
				map[string]any{"name": "Garden Salad", "description": "Fresh greens with house dressing.", "price": "$9"},
			}, "Menu entries.",
				str("name", true, "Dish", ""),
				str("description", true, "A delicious dish.", ""),
				str("price", true, "$12", ""),
			),
		},
		Industries: []string{"restaurant"},
	},
	{
		Name:        "ProductGrid",
		Category:    "industry",
		Description: "Storefront grid of products.",
		Props: []PropSpec{
			str("title", true, "Featured products", ""),
			list("products", []any{
				map[string]any{"name": "Sample Product", "price": "$29", "imageUrl": PlaceholderImageURL},
				map[string]any{"name": "Another Product", "price": "$49", "imageUrl": PlaceholderImageURL},
			}, "Product cards.",
				str("name", true, "Product", ""),
				str("price", true, "$0", ""),
				str("imageUrl", false, PlaceholderImageURL, ""),
			),
		},
		Industries: []string{"ecommerce"},
		MinImages:  2,
	},
	{
		Name:        "PropertyListings",
		Category:    "industry",
		Description: "Real-estate listing cards.",
		Props: []PropSpec{
			str("title", true, "Featured listings", ""),
			list("properties", []any{
				map[string]any{"title": "Charming Family Home", "price": "$450,000", "address": "123 Main St", "imageUrl": PlaceholderImageURL},
				map[string]any{"title": "Downtown Loft", "price": "$320,000", "address": "48 Market Ave", "imageUrl": PlaceholderImageURL},
			}, "Listing cards.",
				str("title", true, "Property", ""),
				str("price", true, "$0", ""),
				str("address", false, "", ""),
				str("imageUrl", false, PlaceholderImageURL, ""),
			),
		},
		Industries: []string{"realestate"},
		MinImages:  2,
	},
	{
		Name:        "ClassSchedule",
		Category:    "industry",
		Description: "Weekly class timetable for gyms and studios.",
		Props: []PropSpec{
			str("title", true, "Class schedule", ""),
			list("classes", []any{
				map[string]any{"name": "Morning Flow", "day": "Monday", "time": "7:00 AM", "instructor": "Alex"},
				map[string]any{"name": "Strength Basics", "day": "Wednesday", "time": "6:00 PM", "instructor": "Sam"},
			}, "Scheduled classes.",
				str("name", true, "Class", ""),
				str("day", true, "Monday", ""),
				str("time", true, "9:00 AM", ""),
				str("instructor", false, "", ""),
			),
		},
		Industries: []string{"fitness"},
	},
	{
		Name:        "GallerySection",
		Category:    "content",
		Description: "Image gallery for portfolios and venues.",
		Props: []PropSpec{
			str("title", true, "Gallery", ""),
			list("images", []any{
				map[string]any{"url": PlaceholderImageURL, "alt": "Gallery image"},
				map[string]any{"url": PlaceholderImageURL, "alt": "Gallery image"},
				map[string]any{"url": PlaceholderImageURL, "alt": "Gallery image"},
			}, "Gallery entries.",
				str("url", true, PlaceholderImageURL, ""),
				str("alt", false, "Gallery image", ""),
			),
		},
		Industries: []string{"creative", "restaurant"},
		MinImages:  3,
	},
	{
		Name:        "TestimonialsSection",
		Category:    "social-proof",
		Description: "Customer quotes with attribution.",
		Props: []PropSpec{
			str("title", true, "What our customers say", ""),
			list("testimonials", []any{
				map[string]any{"quote": "Outstanding service from start to finish.", "author": "Jordan P.", "role": "Customer"},
				map[string]any{"quote": "They exceeded every expectation.", "author": "Casey M.", "role": "Customer"},
			}, "Quotes.",
				str("quote", true, "Great experience.", ""),
				str("author", true, "Happy Customer", ""),
				str("role", false, "", ""),
			),
		},
	},
	{
		Name:        "FAQSection",
		Category:    "content",
		Description: "Frequently asked questions as expandable rows.",
		Props: []PropSpec{
			str("title", true, "Frequently asked questions", ""),
			list("items", []any{
				map[string]any{"question": "How do I get started?", "answer": "Reach out using the contact form below and we'll take it from there."},
				map[string]any{"question": "What are your hours?", "answer": "We're available Monday through Friday, 9 to 5."},
			}, "Question and answer pairs.",
				str("question", true, "Question?", ""),
				str("answer", true, "Answer.", ""),
			),
		},
	},
	{
		Name:        "CTASection",
		Category:    "conversion",
		Description: "Closing call-to-action band.",
		Props: []PropSpec{
			str("title", true, "Ready to get started?", ""),
			str("subtitle", true, "We'd love to hear from you.", ""),
			str("buttonText", true, "Contact us", ""),
			str("buttonLink", false, "#contact", ""),
		},
	},
	{
		Name:        "ContactSection",
		Category:    "conversion",
		Description: "Contact details and inquiry form.",
		Props: []PropSpec{
			str("title", true, "Get in touch", ""),
			str("email", false, "hello@example.com", ""),
			str("phone", false, "(555) 123-4567", ""),
			str("address", false, "", ""),
		},
	},
	{
		Name:        "Footer",
		Category:    "navigation",
		Description: "Bottom band with brand line and links.",
		Props: []PropSpec{
			str("text", true, "All rights reserved.", ""),
			list("links", []any{
				map[string]any{"label": "Privacy", "link": "#"},
				map[string]any{"label": "Terms", "link": "#"},
			}, "Footer links.",
				str("label", true, "Link", ""),
				str("link", true, "#", ""),
			),
		},
	},
}

var byName = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		m[d.Name] = d
	}
	return m
}()

// Lookup returns the descriptor for a component type name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}

// All returns every descriptor in declaration order.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}
