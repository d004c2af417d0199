package domain

import "io"

// Upload is a file received from a client, not yet stored.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}
