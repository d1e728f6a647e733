package domain

// DataType classifies a response body by its content-type header.
type DataType string

const (
	DataTypeJSON      DataType = "JSON"
	DataTypeHTML      DataType = "HTML"
	DataTypeXML       DataType = "XML"
	DataTypePlainText DataType = "Plain Text"
	DataTypeImage     DataType = "Image"
	DataTypePDF       DataType = "PDF"
	DataTypeUnknown   DataType = "Unknown"
)

// SizeInfo reports the response size. Estimated means the value was derived
// by serializing the parsed body because no content-length header was sent;
// for non-text bodies that is an approximation.
type SizeInfo struct {
	Bytes     int64  `json:"bytes"`
	Formatted string `json:"formatted"`
	Estimated bool   `json:"estimated"`
}

// Structure is a shape summary of the parsed body. Which fields are set
// depends on Type: arrays report Length and FirstItemType, objects report
// Keys and TopLevelKeys (capped at 10), scalars report Length of their
// serialized form.
type Structure struct {
	Type          string   `json:"type"`
	Length        int      `json:"length,omitempty"`
	FirstItemType string   `json:"firstItemType,omitempty"`
	Keys          int      `json:"keys,omitempty"`
	TopLevelKeys  []string `json:"topLevelKeys,omitempty"`
}

// Performance rates the total request time and carries textual hints.
type Performance struct {
	Rating          string   `json:"rating"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// SecurityReport partitions the security-header checklist into headers the
// server sent and headers it did not.
type SecurityReport struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// CachingReport surfaces caching headers verbatim ("Not set" when absent).
type CachingReport struct {
	CacheControl string `json:"cacheControl"`
	ETag         string `json:"etag"`
	LastModified string `json:"lastModified"`
	Expires      string `json:"expires"`
	Cacheable    bool   `json:"cacheable"`
}

// AnalysisResult is the derived, informational view of a ResponseRecord.
// Never mutated after creation.
type AnalysisResult struct {
	DataType       DataType       `json:"dataType"`
	Size           SizeInfo       `json:"size"`
	Structure      Structure      `json:"structure"`
	Performance    Performance    `json:"performance"`
	Security       SecurityReport `json:"security"`
	Caching        CachingReport  `json:"caching"`
	StatusCategory StatusCategory `json:"statusCategory"`
}
