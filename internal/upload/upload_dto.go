package upload

type UploadResponse struct {
	ID           string `json:"id"`
	StoredName   string `json:"stored_name"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}
