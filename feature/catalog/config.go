package catalog

// Config holds tuning for the catalog feature.
type Config struct {
	// PageSize is the list page size used when a request does not give one.
	PageSize int `mapstructure:"page_size" default:"10"`
	// MaxPageSize caps the requested page size.
	MaxPageSize int `mapstructure:"max_page_size" default:"100"`
	// Workers bounds concurrent variant writes during reconciliation.
	Workers int `mapstructure:"workers" default:"1"`
	// ImageMaxDimension is the longest edge, in pixels, kept for uploaded images.
	ImageMaxDimension int `mapstructure:"image_max_dimension" default:"1600"`
}

func (c Config) pageSize(requested int) int {
	size := requested
	if size <= 0 {
		size = c.PageSize
	}
	if size <= 0 {
		size = 10
	}
	if c.MaxPageSize > 0 && size > c.MaxPageSize {
		size = c.MaxPageSize
	}
	return size
}
