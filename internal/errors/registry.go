package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Init Errors (P001-P003)
	// ============================================

	"P001": {
		Category: CategoryInit,
		Message:  "Invalid selector given",
		Detail:   "The container locator is empty. Pass a selector such as \".progress\" or \"#upload\".",
	},
	"P002": {
		Category: CategoryInit,
		Message:  "No matches found for given selector",
		Detail:   "No element in the document matches the container selector.",
	},
	"P003": {
		Category: CategoryInit,
		Message:  "Failed to initialize container, required dependency not found",
		Detail:   "The container already has children but none of them carries the required class. Either add the element or start from an empty container so the widget can create it.",
	},

	// ============================================
	// Validation Errors (P004-P010)
	// ============================================

	"P004": {
		Category: CategoryValidation,
		Message:  "Failed to initialize max, given value is invalid",
		Detail:   "max must parse as a positive integer.",
	},
	"P005": {
		Category: CategoryValidation,
		Message:  "Failed to initialize starting value, given value is invalid",
		Detail:   "The starting value must be a number between 0 and max.",
	},
	"P006": {
		Category: CategoryValidation,
		Message:  "Failed to initialize formatter, given formatter is not a function",
		Detail:   "A formatter must be a func(progress.Iteration) string or func(progress.Iteration) (string, error).",
	},
	"P007": {
		Category: CategoryFormat,
		Message:  "Failed to apply default format, given iteration is not an object",
		Detail:   "The default formatter only accepts a progress.Iteration.",
	},
	"P008": {
		Category: CategoryValidation,
		Message:  "Failed to set progress bar progress, given percentage is invalid",
		Detail:   "A percentage must be a number between 0 and 100.",
	},
	"P009": {
		Category: CategoryValidation,
		Message:  "Failed to set progress bar value, given value is invalid",
		Detail:   "A value must be a non-negative number and, added to the starting value, must not exceed max.",
	},

	"P010": {
		Category: CategoryInit,
		Message:  "Widget is not initialized",
		Detail:   "Setters need a widget returned by Init.",
	},

	// ============================================
	// Config Errors (P020-P029)
	// ============================================

	"P020": {
		Category: CategoryConfig,
		Message:  "Failed to read configuration file",
		Detail:   "progressus.json exists but could not be read.",
	},
	"P021": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "progressus.json is not valid JSON.",
	},
	"P022": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A field in progressus.json has a value the widget would reject.",
	},

	// ============================================
	// CLI Errors (P030-P039)
	// ============================================

	"P030": {
		Category: CategoryCLI,
		Message:  "Command failed",
		Detail:   "The command stopped before the widget was involved, usually on a bad flag or argument.",
	},
}
