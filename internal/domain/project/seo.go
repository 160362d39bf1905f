package project

// SEOExtension holds SEO-specific project fields.
type SEOExtension struct {
	TargetKeywords        []string `json:"targetKeywords,omitempty"`
	CompetitorURLs        []string `json:"competitorUrls,omitempty"`
	SearchConsoleProperty string   `json:"searchConsoleProperty,omitempty"`
	MonthlyReportDay      int      `json:"monthlyReportDay,omitempty"`
}

// SEO is the schema for SEO projects.
var SEO = Schema[SEOExtension]{
	Category:   CategorySEO,
	Collection: "seoProjects",
	Statuses: []Status{
		"audit",
		"in-progress",
		"monitoring",
		"completed",
	},
	DefaultStatus: "audit",
	ArrayFields:   []string{"tasks"},
}
