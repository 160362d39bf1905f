package project

// ContentExtension holds content-specific project fields.
type ContentExtension struct {
	ContentType     string   `json:"contentType,omitempty"`
	WordCount       int      `json:"wordCount,omitempty"`
	Tone            string   `json:"tone,omitempty"`
	PublishChannels []string `json:"publishChannels,omitempty"`
}

// Content is the schema for content projects.
var Content = Schema[ContentExtension]{
	Category:   CategoryContent,
	Collection: "contentProjects",
	Statuses: []Status{
		"planning",
		"drafting",
		"review",
		"published",
	},
	DefaultStatus: "planning",
	ArrayFields:   []string{"tasks"},
}
