package project

// GraphicsExtension holds graphics-specific project fields.
type GraphicsExtension struct {
	Brief              string   `json:"brief,omitempty"`
	Deliverables       []string `json:"deliverables,omitempty"`
	BrandGuidelinesURL string   `json:"brandGuidelinesUrl,omitempty"`
	FileFormats        []string `json:"fileFormats,omitempty"`
}

// Graphics is the schema for graphics projects.
var Graphics = Schema[GraphicsExtension]{
	Category:   CategoryGraphics,
	Collection: "graphicsProjects",
	Statuses: []Status{
		"briefing",
		"concept",
		"revision",
		"approved",
		"delivered",
	},
	DefaultStatus: "briefing",
	ArrayFields:   []string{"tasks"},
}
