// Package storage persists defect photo uploads on local disk.
package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxImageSize = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadDir is where defect images land; overridable for tests.
var UploadDir = "uploads/defect_images"

// SaveDefectImage decodes a base64 payload and writes it under
// UploadDir with a generated filename, returning the stored path.
func SaveDefectImage(filename, data string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file %s has an unsupported format, only JPG and PNG are allowed", filename)
	}

	// Reject oversized payloads on encoded length, before decoding
	// anything into memory
	if len(data) > base64.StdEncoding.EncodedLen(MaxImageSize) {
		return "", fmt.Errorf("file %s exceeds the maximum size of 5MB", filename)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("invalid image data: %w", err)
	}
	if len(raw) > MaxImageSize {
		return "", fmt.Errorf("file %s exceeds the maximum size of 5MB", filename)
	}

	if err := os.MkdirAll(UploadDir, 0755); err != nil {
		return "", err
	}

	stored := filepath.Join(UploadDir, uuid.NewString()+ext)
	if err := os.WriteFile(stored, raw, 0644); err != nil {
		return "", err
	}
	return stored, nil
}
