package storage

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type Storage interface {
	Save(path string, data []byte) error
	// Delete removes the file. Deleting a path that does not exist is not
	// an error.
	Delete(path string) error
	Exists(path string) bool
}
