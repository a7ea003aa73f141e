package journal

// ImageUpdate says what UpdateContent does with the entry's image.
type ImageUpdate struct {
	op  imageOp
	uri string
}

type imageOp int

const (
	imageKeep imageOp = iota
	imageSet
	imageRemove
)

// KeepImage leaves the existing image as it is.
func KeepImage() ImageUpdate { return ImageUpdate{op: imageKeep} }

// SetImage attaches the given data URI.
func SetImage(uri string) ImageUpdate { return ImageUpdate{op: imageSet, uri: uri} }

// RemoveImage clears the image.
func RemoveImage() ImageUpdate { return ImageUpdate{op: imageRemove} }

func (u ImageUpdate) apply(current *string) *string {
	switch u.op {
	case imageSet:
		uri := u.uri
		return &uri
	case imageRemove:
		return nil
	default:
		return current
	}
}
