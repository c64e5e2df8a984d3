package gist

// --- Gists ---
type fileDTO struct {
	Content string `json:"content"`
}

type updateGistDTO struct {
	Description string             `json:"description"`
	Files       map[string]fileDTO `json:"files"`
}
