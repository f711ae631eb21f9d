package fclient

// ImageFormat tags the encoding of a rendered image.
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatGIF ImageFormat = "gif"
)

// SearchResult is a single web search hit.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// DictionaryDefinition is one sense of a dictionary entry.
type DictionaryDefinition struct {
	PartOfSpeech string `json:"partOfSpeech"`
	Definition   string `json:"definition"`
	Example      string `json:"example,omitempty"`
}

// DictionaryEntry is the lookup result for a single word.
type DictionaryEntry struct {
	Word        string                 `json:"word"`
	Phonetic    string                 `json:"phonetic,omitempty"`
	Definitions []DictionaryDefinition `json:"definitions"`
}

// ScriptResult is the outcome of a script execution: the rendered image, its
// format as reported by the response content type, and the execution cost
// reported in the service's custom headers.
type ScriptResult struct {
	Image  []byte
	Format ImageFormat

	// WallTime and CPUTime are milliseconds; Memory is bytes. Zero when the
	// corresponding header was absent.
	WallTime int
	CPUTime  int
	Memory   int
}
