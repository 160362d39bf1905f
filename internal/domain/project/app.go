package project

// AppExtension holds app-specific project fields.
type AppExtension struct {
	Platforms        []string          `json:"platforms,omitempty"`
	AppType          string            `json:"appType,omitempty"`
	RepositoryURL    string            `json:"repositoryUrl,omitempty"`
	StoreListingURLs map[string]string `json:"storeListingUrls,omitempty"`
	TechStack        []string          `json:"techStack,omitempty"`
}

// App is the schema for app projects.
var App = Schema[AppExtension]{
	Category:   CategoryApp,
	Collection: "appProjects",
	Statuses: []Status{
		"planning",
		"in-progress",
		"testing",
		"released",
		"completed",
	},
	DefaultStatus: "planning",
	ArrayFields:   []string{"tasks"},
}
