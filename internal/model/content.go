package model

// Content is the payload served for a file or one of its thumbnails.
type Content struct {
	Data        []byte
	ContentType string
}
