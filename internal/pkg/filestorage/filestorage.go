package filestorage

import "mime/multipart"

// Upload subdirectories, one per content type that carries files.
const (
	ProjectImages  = "projects"
	EducationIcons = "education"
)

// FileStorage abstracts where uploaded files live. Records store only the
// generated filename; the subdirectory is implied by the record type.
type FileStorage interface {
	// SaveFile stores the uploaded file under the given subdirectory and
	// returns the generated filename. A nil or empty-named header is a
	// no-op returning "".
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a file that
	// no longer exists is not an error.
	DeleteFile(subPath, filename string) error
}
