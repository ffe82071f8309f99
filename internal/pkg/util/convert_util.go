package util

// PtrUint64 用于将 uint64 转换为 *uint64
func PtrUint64(v uint64) *uint64 {
	return &v
}
