package models

// ServiceOffering describes a single service advertised on the public site.
type ServiceOffering struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
