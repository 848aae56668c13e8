package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 上传题目配图允许的 MIME 前缀
const (
	MimeImage = "image/"
)

const (
	// DefaultDailyBatchSize 每日题组默认题量
	DefaultDailyBatchSize = 10
	DefaultPageSize       = 20
	MaxPageSize           = 100
)
