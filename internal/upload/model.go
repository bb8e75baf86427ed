package upload

// FileRef points at a stored customer file. It is carried opaquely inside
// product option sets and never interpreted by the pricing path.
type FileRef struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Mime     string `json:"mime,omitempty"`
}
