// Package catalog holds the static service and resource definitions for
// the consultancy. Offerings change by deployment, not at runtime, so they
// live in code rather than a table.
package catalog

import "nurturebirth/internal/domain"

var services = []domain.Service{
	{
		ID:              "initial-consultation",
		Slug:            "initial-consultation",
		Title:           "Initial Consultation",
		Description:     "A relaxed one-to-one session to talk through your pregnancy, birth preferences and how we can support you.",
		Duration:        "60 minutes",
		DurationMinutes: 60,
		Price:           7500,
		PriceDisplay:    "£75",
		Type:            domain.ServiceSession,
		SchedulingID:    "1201847",
		SchedulingLink:  "initial-consultation",
		Features: []string{
			"Full pregnancy and birth history review",
			"Personalised care recommendations",
			"Time for all your questions",
		},
	},
	{
		ID:              "birth-preparation",
		Slug:            "birth-preparation",
		Title:           "Birth Preparation Session",
		Description:     "An in-depth session covering labour physiology, comfort measures, and building your birth plan.",
		Duration:        "90 minutes",
		DurationMinutes: 90,
		Price:           12000,
		PriceDisplay:    "£120",
		Type:            domain.ServiceSession,
		SchedulingID:    "1201852",
		SchedulingLink:  "birth-preparation",
		Features: []string{
			"Evidence-based birth education",
			"Partner involvement welcomed",
			"Written birth plan to take away",
		},
	},
	{
		ID:              "postnatal-support",
		Slug:            "postnatal-support",
		Title:           "Postnatal Support Session",
		Description:     "Feeding, recovery and newborn care support in your own home or online.",
		Duration:        "60 minutes",
		DurationMinutes: 60,
		Price:           8500,
		PriceDisplay:    "£85",
		Type:            domain.ServiceSession,
		SchedulingID:    "1201858",
		SchedulingLink:  "postnatal-support",
		Features: []string{
			"Feeding assessment and support",
			"Recovery check-in",
			"Newborn care guidance",
		},
	},
	{
		ID:              "complete-care-package",
		Slug:            "complete-care-package",
		Title:           "Complete Care Package",
		Description:     "Four sessions across pregnancy and the fourth trimester, scheduled around you.",
		Duration:        "4 x 60 minutes",
		DurationMinutes: 60,
		Price:           29500,
		PriceDisplay:    "£295",
		Type:            domain.ServicePackage,
		SchedulingID:    "1201847",
		SchedulingLink:  "initial-consultation",
		Features: []string{
			"Four one-to-one sessions",
			"Priority email support between sessions",
			"Schedule each session when it suits you",
		},
	},
	{
		ID:           "hypnobirthing-guide",
		Slug:         "hypnobirthing-guide",
		Title:        "Hypnobirthing Audio Guide",
		Description:  "A downloadable hypnobirthing course with guided relaxation audio and a printable workbook.",
		Duration:     "Lifetime access",
		Price:        2500,
		PriceDisplay: "£25",
		Type:         domain.ServiceDigital,
		Features: []string{
			"Five guided relaxation tracks",
			"Printable workbook",
			"Instant download after purchase",
		},
		ResourceID: "hypnobirthing-guide",
	},
}

var resources = []domain.Resource{
	{ID: "birth-plan-template", Title: "Birth Plan Template", ObjectKey: "resources/birth-plan-template.pdf", Free: true},
	{ID: "hospital-bag-checklist", Title: "Hospital Bag Checklist", ObjectKey: "resources/hospital-bag-checklist.pdf", Free: true},
	{ID: "hypnobirthing-guide", Title: "Hypnobirthing Audio Guide", ObjectKey: "resources/hypnobirthing-guide.zip", Free: false},
}

func Services() []domain.Service {
	out := make([]domain.Service, len(services))
	copy(out, services)
	return out
}

func ServiceBySlug(slug string) *domain.Service {
	for i := range services {
		if services[i].Slug == slug {
			s := services[i]
			return &s
		}
	}
	return nil
}

func ServiceByID(id string) *domain.Service {
	for i := range services {
		if services[i].ID == id {
			s := services[i]
			return &s
		}
	}
	return nil
}

func ResourceByID(id string) *domain.Resource {
	for i := range resources {
		if resources[i].ID == id {
			r := resources[i]
			return &r
		}
	}
	return nil
}
