package project

// WebsiteExtension holds website-specific project fields.
type WebsiteExtension struct {
	Domain          string `json:"domain,omitempty"`
	HostingProvider string `json:"hostingProvider,omitempty"`
	CMSType         string `json:"cmsType,omitempty"`
	StagingURL      string `json:"stagingUrl,omitempty"`
	LiveURL         string `json:"liveUrl,omitempty"`
}

// Website is the schema for website projects.
var Website = Schema[WebsiteExtension]{
	Category:   CategoryWebsite,
	Collection: "websiteProjects",
	Statuses: []Status{
		"planning",
		"design",
		"development",
		"review",
		"live",
		"completed",
	},
	DefaultStatus: "planning",
	ArrayFields:   []string{"tasks"},
}
