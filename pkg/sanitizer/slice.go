package sanitizer

// NormalizePhotos returns a copy of photos with every entry kept as sent and
// in order. The result is never nil.
func NormalizePhotos(photos []string) []string {
	result := make([]string, len(photos))
	copy(result, photos)
	return result
}
