package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value from an explicit zero. Missing
// fields take the command-line defaults.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	Strength    string  `json:"strength"`
	Entropy     float64 `json:"entropy"`
	CharsetSize int     `json:"charset_size"`
}
