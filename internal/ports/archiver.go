package ports

// Archiver packages one group's downloaded files and returns the package
// path. Files are stored under their base names only.
type Archiver interface {
	Archive(group string, files []string) (string, error)
}
