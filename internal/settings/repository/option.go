package repository

// SaveOptions is the full settings record to persist.
type SaveOptions struct {
	City     string
	Lat      *float64
	Lon      *float64
	Timezone string
}
