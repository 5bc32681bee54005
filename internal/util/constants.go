package util

const DateFormat = "2006-01-02"

// GeneralTopic is the bucket for attempts without a usable topic.
const GeneralTopic = "Geral"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	RecentResponsesLimit = 10
	DefaultPageSize      = 10
	MaxPageSize          = 100
	MaxPhotoSize         = 5 << 20
)

var AllowedPhotoTypes = []string{"image/jpeg", "image/png", "image/webp"}
