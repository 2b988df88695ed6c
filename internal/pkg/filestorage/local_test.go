package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing multipart content failed: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("FormFile failed: %v", err)
	}
	return header
}

func TestNewLocalStorage_CreatesSubdirectories(t *testing.T) {
	base := t.TempDir()

	if _, err := NewLocalStorage(base); err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	for _, sub := range []string{ProjectImages, EducationIcons} {
		info, err := os.Stat(filepath.Join(base, sub))
		if err != nil {
			t.Errorf("expected subdirectory %s: %v", sub, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("expected %s to be a directory", sub)
		}
	}
}

func TestLocalStorage_SaveFile(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base)
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	content := []byte("fake image bytes")
	header := uploadHeader(t, "Screenshot.PNG", content)

	filename, err := storage.SaveFile(header, ProjectImages)
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	if filename == "" {
		t.Fatal("expected a generated filename")
	}
	if !strings.HasSuffix(filename, ".png") {
		t.Errorf("expected lowercased extension, got %q", filename)
	}
	if filename == "Screenshot.PNG" {
		t.Error("expected generated name, not the original filename")
	}

	saved, err := os.ReadFile(filepath.Join(base, ProjectImages, filename))
	if err != nil {
		t.Fatalf("reading saved file failed: %v", err)
	}
	if !bytes.Equal(saved, content) {
		t.Error("saved content does not match uploaded content")
	}
}

func TestLocalStorage_SaveFile_UniqueNames(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	first, err := storage.SaveFile(uploadHeader(t, "logo.png", []byte("a")), EducationIcons)
	if err != nil {
		t.Fatalf("first SaveFile failed: %v", err)
	}
	second, err := storage.SaveFile(uploadHeader(t, "logo.png", []byte("b")), EducationIcons)
	if err != nil {
		t.Fatalf("second SaveFile failed: %v", err)
	}
	if first == second {
		t.Errorf("expected unique names for repeated uploads, got %q twice", first)
	}
}

func TestLocalStorage_SaveFile_NilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	filename, err := storage.SaveFile(nil, ProjectImages)
	if err != nil {
		t.Fatalf("SaveFile with nil header failed: %v", err)
	}
	if filename != "" {
		t.Errorf("expected empty filename for nil header, got %q", filename)
	}
}

func TestLocalStorage_DeleteFile(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base)
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	filename, err := storage.SaveFile(uploadHeader(t, "shot.png", []byte("x")), ProjectImages)
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	if err := storage.DeleteFile(ProjectImages, filename); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, ProjectImages, filename)); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}

	// Deleting again is not an error.
	if err := storage.DeleteFile(ProjectImages, filename); err != nil {
		t.Errorf("expected missing file to be tolerated, got %v", err)
	}
}

func TestLocalStorage_DeleteFile_RejectsPath(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	if err := storage.DeleteFile(ProjectImages, "../escape.png"); err == nil {
		t.Error("expected error for filename containing a path")
	}
}
