package domain

// Resource is a downloadable asset stored in object storage. Free
// resources are gated by a signed download token, paid ones by a completed
// checkout session.
type Resource struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ObjectKey string `json:"-"`
	Free      bool   `json:"free"`
}
