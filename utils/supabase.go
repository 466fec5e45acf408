package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"
)

const storageBucket = "alumni-portal-uploads"

// UploadToSupabase stores a file in the portal's storage bucket and returns
// its public URL. Accepts either a multipart upload or raw bytes.
func UploadToSupabase(file interface{}, filename string, fileID string, folder string, contentType string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	var reader io.Reader
	var ext string

	if fh, ok := file.(*multipart.FileHeader); ok {
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		reader = f
		ext = filepath.Ext(fh.Filename)
		if contentType == "" {
			contentType = fh.Header.Get("Content-Type")
		}
		if _, err := f.Seek(0, 0); err != nil {
			return "", err
		}
	}

	if data, ok := file.([]byte); ok {
		reader = bytes.NewReader(data)
		ext = filepath.Ext(filename)
	}

	objectPath := fmt.Sprintf("%s%s", fileID, ext)
	if folder != "" {
		objectPath = fmt.Sprintf("%s/%s%s", folder, fileID, ext)
	}

	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := storageClient.UploadFile(storageBucket, objectPath, reader, options); err != nil {
		return "", err
	}

	publicURL := storageClient.GetPublicUrl(storageBucket, objectPath)
	return publicURL.SignedURL, nil
}
