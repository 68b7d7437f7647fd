package email

type Template string

const (
	TemplateWelcome Template = "welcome"
)

// PreviewData holds sample values for rendering every template locally.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserGroup": "general",
	},
}
