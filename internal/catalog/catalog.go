// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the static per-industry configuration: content
// templates, preferred components, image keywords, and audience tags.
// The catalog is built once at init and never mutated, so concurrent
// readers are always safe. Every lookup falls back to the "technology"
// entry for unknown keys.
package catalog

import "strings"

// ContentTemplates provides the deterministic fallback copy used when no
// AI provider produces content. Every slice is non-empty for every industry.
type ContentTemplates struct {
	Headlines    []string `json:"headlines"`
	Taglines     []string `json:"taglines"`
	ValueProps   []string `json:"valueProps"`
	AboutBlurbs  []string `json:"aboutBlurbs"`
	ServiceNames []string `json:"serviceNames"`
	CTATexts     []string `json:"ctaTexts"`
}

// IndustryConfig is the per-industry metadata record.
type IndustryConfig struct {
	Key                 string           `json:"key"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	Category            string           `json:"category"`
	Colors              [3]string        `json:"colors"`
	PreferredComponents []string         `json:"preferredComponents"`
	RequiredSections    []string         `json:"requiredSections"`
	OptionalSections    []string         `json:"optionalSections"`
	IndustryComponents  []string         `json:"industryComponents"`
	Templates           ContentTemplates `json:"templates"`
	ImageKeywords       []string         `json:"imageKeywords"`
	Audiences           []string         `json:"audiences"`
	Goals               []string         `json:"goals"`
}

// DefaultKey is the industry every unknown key resolves to.
const DefaultKey = "technology"

// industries is the catalog in declaration order. Categories() preserves
// this order, so keep related industries grouped.
var industries = []IndustryConfig{
	{
		Key:         "technology",
		Name:        "Technology",
		Description: "Software products, SaaS platforms, and IT services.",
		Category:    "professional",
		Colors:      [3]string{"#6366f1", "#4f46e5", "#22d3ee"},
		PreferredComponents: []string{
			"Header", "HeroSection", "FeaturesSection", "AboutSection",
			"ServicesSection", "TestimonialsSection", "CTASection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "FeaturesSection", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "FAQSection", "CTASection"},
		IndustryComponents: []string{"IntegrationsGrid", "PricingTable"},
		Templates: ContentTemplates{
			Headlines: []string{
				"Build faster. Ship smarter.",
				"The platform your team has been waiting for",
				"Modern software for modern problems",
			},
			Taglines: []string{
				"Trusted by teams that move fast",
				"From idea to production in days, not months",
			},
			ValueProps: []string{
				"Launch in minutes with zero configuration",
				"Enterprise-grade security out of the box",
				"Scales with you from prototype to production",
			},
			AboutBlurbs: []string{
				"We are a team of engineers obsessed with developer experience. We build tools that get out of your way so you can focus on what matters: shipping great products.",
			},
			ServiceNames: []string{"Cloud Hosting", "API Integration", "Custom Development", "24/7 Support"},
			CTATexts:     []string{"Start free trial", "Book a demo", "Get started"},
		},
		ImageKeywords: []string{"technology", "software", "startup office"},
		Audiences:     []string{"developers", "startups", "enterprises"},
		Goals:         []string{"signups", "demos", "trials"},
	},
	{
		Key:         "finance",
		Name:        "Finance",
		Description: "Accounting firms, financial advisors, and fintech.",
		Category:    "professional",
		Colors:      [3]string{"#065f46", "#064e3b", "#d97706"},
		PreferredComponents: []string{
			"Header", "HeroSection", "ServicesSection", "AboutSection",
			"TestimonialsSection", "FAQSection", "ContactSection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "ServicesSection", "ContactSection", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "FAQSection"},
		IndustryComponents: []string{"CalculatorWidget", "RatesTable"},
		Templates: ContentTemplates{
			Headlines: []string{
				"Your money, managed with care",
				"Financial clarity for every stage of life",
				"Plan today. Prosper tomorrow.",
			},
			Taglines: []string{
				"Independent advice you can trust",
				"Decades of experience, one clear plan",
			},
			ValueProps: []string{
				"Fiduciary advisors with no hidden fees",
				"Personalized plans reviewed quarterly",
				"Secure client portal with real-time reporting",
			},
			AboutBlurbs: []string{
				"For over twenty years we have helped families and businesses make confident financial decisions. Our advisors combine rigorous analysis with plain-language guidance.",
			},
			ServiceNames: []string{"Wealth Management", "Tax Planning", "Retirement Planning", "Business Advisory"},
			CTATexts:     []string{"Schedule a consultation", "Get your free review"},
		},
		ImageKeywords: []string{"finance", "business meeting", "office professional"},
		Audiences:     []string{"families", "business owners", "retirees"},
		Goals:         []string{"consultations", "leads"},
	},
	{
		Key:         "legal",
		Name:        "Legal",
		Description: "Law firms and independent legal practices.",
		Category:    "professional",
		Colors:      [3]string{"#1e3a8a", "#172554", "#b45309"},
		PreferredComponents: []string{
			"Header", "HeroSection", "ServicesSection", "AboutSection",
			"TestimonialsSection", "FAQSection", "ContactSection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "ServicesSection", "ContactSection", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "FAQSection"},
		IndustryComponents: []string{"PracticeAreas", "AttorneyProfiles"},
		Templates: ContentTemplates{
			Headlines: []string{
				"Experienced counsel. Proven results.",
				"Protecting what matters most to you",
				"Your case deserves serious representation",
			},
			Taglines: []string{
				"Straight answers from seasoned attorneys",
				"On your side from day one",
			},
			ValueProps: []string{
				"Free initial case evaluation",
				"Decades of combined courtroom experience",
				"Clear fees agreed before work begins",
			},
			AboutBlurbs: []string{
				"Our firm was founded on a simple principle: every client deserves attentive, strategic, and honest representation. We handle each matter with the care it deserves.",
			},
			ServiceNames: []string{"Family Law", "Business Law", "Estate Planning", "Litigation"},
			CTATexts:     []string{"Request a consultation", "Talk to an attorney"},
		},
		ImageKeywords: []string{"law office", "courthouse", "professional handshake"},
		Audiences:     []string{"individuals", "families", "small businesses"},
		Goals:         []string{"consultations", "calls"},
	},
	{
		Key:         "restaurant",
		Name:        "Restaurant",
		Description: "Restaurants, cafés, bars, and catering businesses.",
		Category:    "hospitality",
		Colors:      [3]string{"#b45309", "#92400e", "#dc2626"},
		PreferredComponents: []string{
			"Header", "HeroSection", "MenuSection", "AboutSection",
			"TestimonialsSection", "ContactSection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "MenuSection", "ContactSection", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "GallerySection", "ReservationWidget"},
		IndustryComponents: []string{"MenuSection", "ReservationWidget", "GallerySection"},
		Templates: ContentTemplates{
			Headlines: []string{
				"A table worth coming back to",
				"Fresh, local, unforgettable",
				"Where every meal tells a story",
			},
			Taglines: []string{
				"Seasonal menus, crafted daily",
				"Good food. Good company. Every time.",
			},
			ValueProps: []string{
				"Locally sourced ingredients, changed with the seasons",
				"Chef-driven menu with daily specials",
				"Warm service in a relaxed setting",
			},
			AboutBlurbs: []string{
				"What began as a small family kitchen has grown into a neighborhood favorite. We cook the food we love to eat, and we serve it the way we would to friends.",
			},
			ServiceNames: []string{"Dinner Service", "Private Events", "Catering", "Weekend Brunch"},
			CTATexts:     []string{"Reserve a table", "View our menu", "Order online"},
		},
		ImageKeywords: []string{"restaurant interior", "gourmet food", "chef cooking"},
		Audiences:     []string{"locals", "families", "food lovers"},
		Goals:         []string{"reservations", "orders"},
	},
	{
		Key:         "ecommerce",
		Name:        "E-commerce",
		Description: "Online stores and direct-to-consumer brands.",
		Category:    "retail",
		Colors:      [3]string{"#db2777", "#be185d", "#facc15"},
		PreferredComponents: []string{
			"Header", "HeroSection", "ProductGrid", "FeaturesSection",
			"TestimonialsSection", "CTASection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "ProductGrid", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "FAQSection", "CTASection"},
		IndustryComponents: []string{"ProductGrid", "CollectionBanner"},
		Templates: ContentTemplates{
			Headlines: []string{
				"Things you'll actually love",
				"Quality goods, delivered to your door",
				"Shop the new collection",
			},
			Taglines: []string{
				"Free shipping on orders over $50",
				"Designed to last, priced to love",
			},
			ValueProps: []string{
				"Free returns within 30 days",
				"Carbon-neutral shipping on every order",
				"Thousands of five-star reviews",
			},
			AboutBlurbs: []string{
				"We started with a simple idea: everyday products should be beautiful, durable, and fairly priced. Every item in our store is tested by our own team before it ships.",
			},
			ServiceNames: []string{"New Arrivals", "Best Sellers", "Gift Cards", "Customer Care"},
			CTATexts:     []string{"Shop now", "Browse the collection"},
		},
		ImageKeywords: []string{"product photography", "online shopping", "retail store"},
		Audiences:     []string{"online shoppers", "gift buyers"},
		Goals:         []string{"sales", "newsletter signups"},
	},
	{
		Key:         "healthcare",
		Name:        "Healthcare",
		Description: "Clinics, dental practices, and wellness providers.",
		Category:    "health",
		Colors:      [3]string{"#0d9488", "#0f766e", "#38bdf8"},
		PreferredComponents: []string{
			"Header", "HeroSection", "ServicesSection", "AboutSection",
			"TestimonialsSection", "FAQSection", "ContactSection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "ServicesSection", "ContactSection", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "FAQSection", "AppointmentWidget"},
		IndustryComponents: []string{"AppointmentWidget", "ProviderProfiles"},
		Templates: ContentTemplates{
			Headlines: []string{
				"Care that puts you first",
				"Modern medicine, human touch",
				"Your health, our priority",
			},
			Taglines: []string{
				"Same-week appointments available",
				"Compassionate care for the whole family",
			},
			ValueProps: []string{
				"Board-certified providers you can trust",
				"Online booking and telehealth visits",
				"Most insurance plans accepted",
			},
			AboutBlurbs: []string{
				"Our practice was built around one belief: healthcare should be personal. From your first visit, our team takes the time to listen, explain, and care.",
			},
			ServiceNames: []string{"Preventive Care", "Family Medicine", "Telehealth", "Lab Services"},
			CTATexts:     []string{"Book an appointment", "Find a provider"},
		},
		ImageKeywords: []string{"medical clinic", "doctor patient", "healthcare team"},
		Audiences:     []string{"patients", "families", "seniors"},
		Goals:         []string{"appointments", "patient signups"},
	},
	{
		Key:         "fitness",
		Name:        "Fitness",
		Description: "Gyms, studios, and personal training businesses.",
		Category:    "health",
		Colors:      [3]string{"#f97316", "#ea580c", "#84cc16"},
		PreferredComponents: []string{
			"Header", "HeroSection", "ClassSchedule", "FeaturesSection",
			"TestimonialsSection", "CTASection", "ContactSection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "ClassSchedule", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "PricingTable", "CTASection"},
		IndustryComponents: []string{"ClassSchedule", "TrainerProfiles", "PricingTable"},
		Templates: ContentTemplates{
			Headlines: []string{
				"Stronger every session",
				"Train hard. Recover smart. Repeat.",
				"Your best shape starts here",
			},
			Taglines: []string{
				"Coaching for every level",
				"First class free, no strings attached",
			},
			ValueProps: []string{
				"Certified coaches in every class",
				"Flexible memberships, cancel anytime",
				"Open early, open late, seven days a week",
			},
			AboutBlurbs: []string{
				"We opened our doors to build a gym we wanted to train in: great coaching, real community, and zero intimidation. Whether it is your first workout or your thousandth, you belong here.",
			},
			ServiceNames: []string{"Group Classes", "Personal Training", "Open Gym", "Nutrition Coaching"},
			CTATexts:     []string{"Claim your free class", "Join today"},
		},
		ImageKeywords: []string{"gym workout", "fitness training", "yoga studio"},
		Audiences:     []string{"beginners", "athletes", "busy professionals"},
		Goals:         []string{"memberships", "trial classes"},
	},
	{
		Key:         "education",
		Name:        "Education",
		Description: "Schools, tutoring services, and online course creators.",
		Category:    "services",
		Colors:      [3]string{"#7c3aed", "#6d28d9", "#fb923c"},
		PreferredComponents: []string{
			"Header", "HeroSection", "FeaturesSection", "AboutSection",
			"ServicesSection", "TestimonialsSection", "FAQSection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "ServicesSection", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "FAQSection", "CTASection"},
		IndustryComponents: []string{"CourseCatalog", "InstructorProfiles"},
		Templates: ContentTemplates{
			Headlines: []string{
				"Learning that sticks",
				"Unlock your potential, one lesson at a time",
				"Teaching built around how you learn",
			},
			Taglines: []string{
				"Small groups, big results",
				"Learn from instructors who care",
			},
			ValueProps: []string{
				"Personalized learning plans for every student",
				"Proven results on grades and test scores",
				"Flexible scheduling, online or in person",
			},
			AboutBlurbs: []string{
				"We believe every student can excel with the right support. Our instructors combine subject expertise with genuine mentorship to build both skills and confidence.",
			},
			ServiceNames: []string{"One-on-One Tutoring", "Group Courses", "Test Prep", "Summer Programs"},
			CTATexts:     []string{"Book a free assessment", "Explore courses"},
		},
		ImageKeywords: []string{"classroom learning", "students studying", "online education"},
		Audiences:     []string{"students", "parents", "adult learners"},
		Goals:         []string{"enrollments", "assessments"},
	},
	{
		Key:         "realestate",
		Name:        "Real Estate",
		Description: "Agencies, brokers, and property management firms.",
		Category:    "services",
		Colors:      [3]string{"#374151", "#1f2937", "#b91c1c"},
		PreferredComponents: []string{
			"Header", "HeroSection", "PropertyListings", "AboutSection",
			"TestimonialsSection", "ContactSection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "PropertyListings", "ContactSection", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "FAQSection"},
		IndustryComponents: []string{"PropertyListings", "AgentProfiles", "MortgageCalculator"},
		Templates: ContentTemplates{
			Headlines: []string{
				"Find the place you'll call home",
				"Local expertise. Exceptional results.",
				"Your next move starts here",
			},
			Taglines: []string{
				"Serving the community for over a decade",
				"Homes sold faster, for more",
			},
			ValueProps: []string{
				"Deep knowledge of the local market",
				"Professional photography and staging included",
				"Negotiation that protects your bottom line",
			},
			AboutBlurbs: []string{
				"Buying or selling a home is one of life's biggest decisions. Our agents guide you through every step with honest advice, sharp market insight, and relentless follow-through.",
			},
			ServiceNames: []string{"Buying", "Selling", "Property Management", "Market Analysis"},
			CTATexts:     []string{"Browse listings", "Get a free valuation"},
		},
		ImageKeywords: []string{"modern house", "home interior", "city neighborhood"},
		Audiences:     []string{"buyers", "sellers", "investors"},
		Goals:         []string{"listings viewed", "valuations"},
	},
	{
		Key:         "creative",
		Name:        "Creative",
		Description: "Design studios, photographers, and creative agencies.",
		Category:    "services",
		Colors:      [3]string{"#ec4899", "#a21caf", "#eab308"},
		PreferredComponents: []string{
			"Header", "HeroSection", "GallerySection", "AboutSection",
			"ServicesSection", "TestimonialsSection", "ContactSection", "Footer",
		},
		RequiredSections:   []string{"Header", "HeroSection", "GallerySection", "Footer"},
		OptionalSections:   []string{"TestimonialsSection", "CTASection"},
		IndustryComponents: []string{"GallerySection", "PortfolioGrid"},
		Templates: ContentTemplates{
			Headlines: []string{
				"Work that gets noticed",
				"Ideas, crafted beautifully",
				"Design with a point of view",
			},
			Taglines: []string{
				"Strategy, design, and craft under one roof",
				"Brands remembered, not just seen",
			},
			ValueProps: []string{
				"Award-winning work across industries",
				"A collaborative process from brief to launch",
				"Fixed-price projects with no surprises",
			},
			AboutBlurbs: []string{
				"We are a small studio with big standards. Every project starts with listening and ends with work we are proud to sign. In between: sketches, arguments, espresso, and craft.",
			},
			ServiceNames: []string{"Brand Identity", "Web Design", "Photography", "Art Direction"},
			CTATexts:     []string{"Start a project", "See our work"},
		},
		ImageKeywords: []string{"design studio", "creative workspace", "art portfolio"},
		Audiences:     []string{"founders", "marketing teams", "publishers"},
		Goals:         []string{"project inquiries", "portfolio views"},
	},
}

// byKey is built from the declaration-order slice at init.
var byKey = func() map[string]IndustryConfig {
	m := make(map[string]IndustryConfig, len(industries))
	for _, ic := range industries {
		m[ic.Key] = ic
	}
	return m
}()

// Get returns the config for an industry key, falling back to the
// "technology" entry for unknown keys. The key is trimmed and lowercased
// before lookup.
func Get(key string) IndustryConfig {
	k := strings.ToLower(strings.TrimSpace(key))
	if ic, ok := byKey[k]; ok {
		return ic
	}
	return byKey[DefaultKey]
}

// Known reports whether the key names a catalog entry (after normalization).
func Known(key string) bool {
	_, ok := byKey[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// All returns every industry config in declaration order.
func All() []IndustryConfig {
	out := make([]IndustryConfig, len(industries))
	copy(out, industries)
	return out
}

// ListByCategory returns all configs with the given category tag, in
// declaration order.
func ListByCategory(category string) []IndustryConfig {
	var out []IndustryConfig
	for _, ic := range industries {
		if ic.Category == category {
			out = append(out, ic)
		}
	}
	return out
}

// Categories returns the deduplicated category tags in first-seen order
// across the catalog's declaration order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, ic := range industries {
		if !seen[ic.Category] {
			seen[ic.Category] = true
			out = append(out, ic.Category)
		}
	}
	return out
}
