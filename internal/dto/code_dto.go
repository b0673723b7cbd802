package dto

type RunCodeRequest struct {
	SourceCode string `json:"source_code" validate:"required"`
	Language   string `json:"language" validate:"required"`
	Stdin      string `json:"stdin"`
}

type RunCodeResponse struct {
	Stdout        string  `json:"stdout"`
	Stderr        string  `json:"stderr"`
	CompileOutput string  `json:"compile_output"`
	Status        string  `json:"status"`
	Time          *string `json:"time"`
	Memory        *int    `json:"memory"`
}
