package resume

// Project is one resume project entry.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// Structured is the parsed form of a resume as produced by the text model.
type Structured struct {
	Name       string       `json:"name"`
	Email      string       `json:"email,omitempty"`
	Skills     []string     `json:"skills"`
	Projects   []Project    `json:"projects"`
	Experience []Experience `json:"experience"`
	Education  string       `json:"education"`
	RawParse   string       `json:"raw_parse,omitempty"`
}

// Fallback is used when the model output cannot be decoded.
func Fallback(raw string) *Structured {
	return &Structured{
		Name:       "Unknown",
		Skills:     []string{},
		Projects:   []Project{},
		Experience: []Experience{},
		RawParse:   raw,
	}
}
