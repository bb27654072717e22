package utils

import (
	"edureg/config"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// StoreFile hands the upload to the configured external file host, or keeps it
// on local disk served under /uploads when no host is configured. Either way
// the caller gets back the URL to store on the record.
func StoreFile(file *multipart.FileHeader) (string, error) {
	if config.AppConfig.FileHostURL != "" {
		return uploadToFileHost(file)
	}

	name, err := SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return "", err
	}
	return GetFileURL(name), nil
}

// SaveUploadedFile writes the upload into destDir under a unique name
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8] + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}

func GetFileURL(fileName string) string {
	if fileName == "" {
		return ""
	}
	return "/uploads/" + fileName
}

// uploadToFileHost forwards the file to the hosting endpoint and returns the
// stable URL it responds with
func uploadToFileHost(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	client := resty.New()
	resp, err := client.R().
		SetFileReader("file", file.Filename, src).
		Post(config.AppConfig.FileHostURL)
	if err != nil {
		return "", fmt.Errorf("failed to reach file host: %v", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("file host returned %d: %s", resp.StatusCode(), resp.String())
	}

	var hostResp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(resp.Body(), &hostResp); err != nil {
		return "", fmt.Errorf("invalid file host response: %v", err)
	}
	if hostResp.URL == "" {
		return "", fmt.Errorf("file host response missing url")
	}

	return hostResp.URL, nil
}
