package met

import "strings"

// PlaceholderImage is shown when an object has no primary image.
const PlaceholderImage = "https://via.placeholder.com/300"

// SearchResponse mirrors the payload returned by the search endpoint.
// ObjectIDs is null when nothing matches.
type SearchResponse struct {
	Total     int     `json:"total"`
	ObjectIDs []int64 `json:"objectIDs"`
}

// Artwork mirrors the subset of the object endpoint artex displays.
type Artwork struct {
	ObjectID          int64  `json:"objectID" yaml:"objectID"`
	Title             string `json:"title" yaml:"title"`
	ArtistDisplayName string `json:"artistDisplayName" yaml:"artistDisplayName"`
	PrimaryImage      string `json:"primaryImage" yaml:"primaryImage,omitempty"`
	PrimaryImageSmall string `json:"primaryImageSmall" yaml:"primaryImageSmall,omitempty"`
	ObjectDate        string `json:"objectDate" yaml:"objectDate,omitempty"`
	Medium            string `json:"medium" yaml:"medium,omitempty"`
	Dimensions        string `json:"dimensions" yaml:"dimensions,omitempty"`
	Department        string `json:"department" yaml:"department,omitempty"`
	Culture           string `json:"culture" yaml:"culture,omitempty"`
	CreditLine        string `json:"creditLine" yaml:"creditLine,omitempty"`
	IsPublicDomain    bool   `json:"isPublicDomain" yaml:"isPublicDomain"`
	ObjectURL         string `json:"objectURL" yaml:"objectURL,omitempty"`
}

// ImageURL returns the primary image, or PlaceholderImage when absent.
func (a Artwork) ImageURL() string {
	if url := strings.TrimSpace(a.PrimaryImage); url != "" {
		return url
	}
	return PlaceholderImage
}

// HasImage reports whether the object carries its own primary image.
func (a Artwork) HasImage() bool {
	return strings.TrimSpace(a.PrimaryImage) != ""
}
