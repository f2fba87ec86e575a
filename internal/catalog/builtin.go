package catalog

// Builtin returns the default catalog shipped with the binary. Hosts that
// want their own catalog pass a JSON file instead (see LoadFrom).
//
// The slice is rebuilt on every call so callers can't mutate shared state.
func Builtin() []Tool {
	return []Tool{
		{
			ID:          "json-formatter",
			Name:        "JSON Formatter",
			Description: "Format, validate, and minify JSON documents",
			Category:    CategoryDeveloper,
			Keywords:    []string{"json", "format", "validate", "minify", "pretty print"},
			Featured:    true,
		},
		{
			ID:          "base64-encoder",
			Name:        "Base64 Encoder",
			Description: "Encode and decode text or files to and from Base64",
			Category:    CategoryDeveloper,
			Keywords:    []string{"base64", "encode", "decode"},
			Featured:    true,
		},
		{
			ID:          "url-encoder",
			Name:        "URL Encoder",
			Description: "Percent-encode and decode URL components",
			Category:    CategoryDeveloper,
			Keywords:    []string{"url", "encode", "decode", "percent encoding", "query string"},
		},
		{
			ID:          "uuid-generator",
			Name:        "UUID Generator",
			Description: "Generate random version 4 UUIDs in bulk",
			Category:    CategoryDeveloper,
			Keywords:    []string{"uuid", "guid", "random", "identifier"},
		},
		{
			ID:          "jwt-decoder",
			Name:        "JWT Decoder",
			Description: "Decode JSON Web Tokens and inspect header and payload claims",
			Category:    CategorySecurity,
			Keywords:    []string{"jwt", "token", "decode", "claims"},
		},
		{
			ID:          "hash-generator",
			Name:        "Hash Generator",
			Description: "Compute MD5, SHA-1, and SHA-256 digests of text input",
			Category:    CategorySecurity,
			Keywords:    []string{"hash", "md5", "sha256", "checksum", "digest"},
		},
		{
			ID:          "password-generator",
			Name:        "Password Generator",
			Description: "Generate strong random passwords with configurable rules",
			Category:    CategorySecurity,
			Keywords:    []string{"password", "random", "secure"},
			Featured:    true,
		},
		{
			ID:          "regex-tester",
			Name:        "Regex Tester",
			Description: "Test regular expressions against sample text with live highlighting",
			Category:    CategoryDeveloper,
			Keywords:    []string{"regex", "regular expression", "pattern", "match"},
		},
		{
			ID:          "markdown-preview",
			Name:        "Markdown Preview",
			Description: "Render Markdown to HTML with side-by-side preview",
			Category:    CategoryText,
			Keywords:    []string{"markdown", "preview", "html", "render"},
		},
		{
			ID:          "case-converter",
			Name:        "Case Converter",
			Description: "Convert text between camelCase, snake_case, kebab-case, and more",
			Category:    CategoryText,
			Keywords:    []string{"case", "camel", "snake", "kebab", "text transform"},
		},
		{
			ID:          "word-counter",
			Name:        "Word Counter",
			Description: "Count words, characters, sentences, and reading time",
			Category:    CategoryText,
			Keywords:    []string{"word count", "characters", "reading time"},
		},
		{
			ID:          "diff-checker",
			Name:        "Diff Checker",
			Description: "Compare two blocks of text and highlight the differences",
			Category:    CategoryText,
			Keywords:    []string{"diff", "compare", "text difference"},
		},
		{
			ID:          "unit-converter",
			Name:        "Unit Converter",
			Description: "Convert between metric and imperial units of length, weight, and volume",
			Category:    CategoryConverter,
			Keywords:    []string{"unit", "metric", "imperial", "convert"},
		},
		{
			ID:          "timestamp-converter",
			Name:        "Timestamp Converter",
			Description: "Convert Unix timestamps to human-readable dates and back",
			Category:    CategoryConverter,
			Keywords:    []string{"timestamp", "unix", "epoch", "date", "time"},
			Featured:    true,
		},
		{
			ID:          "color-converter",
			Name:        "Color Converter",
			Description: "Convert colors between HEX, RGB, and HSL notations",
			Category:    CategoryDesign,
			Keywords:    []string{"color", "hex", "rgb", "hsl", "palette"},
		},
		{
			ID:          "gradient-generator",
			Name:        "Gradient Generator",
			Description: "Build CSS gradients visually and copy the generated code",
			Category:    CategoryDesign,
			Keywords:    []string{"gradient", "css", "background"},
		},
		{
			ID:          "percentage-calculator",
			Name:        "Percentage Calculator",
			Description: "Calculate percentages, increases, and decreases",
			Category:    CategoryCalculator,
			Keywords:    []string{"percentage", "percent", "calculate"},
		},
		{
			ID:          "loan-calculator",
			Name:        "Loan Calculator",
			Description: "Estimate monthly loan payments from principal, rate, and term",
			Category:    CategoryCalculator,
			Keywords:    []string{"loan", "interest", "mortgage", "payment"},
		},
		{
			ID:          "bmi-calculator",
			Name:        "BMI Calculator",
			Description: "Calculate body mass index from height and weight",
			Category:    CategoryCalculator,
			Keywords:    []string{"bmi", "body mass index", "health"},
		},
		{
			ID:          "qr-generator",
			Name:        "QR Code Generator",
			Description: "Generate QR codes from text, URLs, or contact details",
			Category:    CategoryConverter,
			Keywords:    []string{"qr", "qr code", "barcode"},
		},
	}
}
