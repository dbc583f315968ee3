package sharedTypes

// Dataset describes a remote rail dataset that can be synced from S3.
type Dataset struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Bucket      string `json:"bucket"`
	Folder      string `json:"folder"`
}
