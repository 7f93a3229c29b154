package entity

import (
	"fmt"
	"strings"
	"time"
)

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

// FileTypeFromContentType derives the stored file type from the declared
// MIME type of an upload. Anything that is not an image or a video is rejected.
func FileTypeFromContentType(contentType string) (FileType, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return FileTypeImage, nil
	case strings.HasPrefix(contentType, "video/"):
		return FileTypeVideo, nil
	default:
		return "", ErrUnsupportedMediaType
	}
}

type MediaCategory string

const (
	CategoryPortfolio MediaCategory = "portfolio"
	CategoryWorkshop  MediaCategory = "workshop"
	CategoryTeam      MediaCategory = "team"
)

// ParseMediaCategory validates a client-supplied category. An empty value
// defaults to portfolio.
func ParseMediaCategory(s string) (MediaCategory, error) {
	switch s {
	case "":
		return CategoryPortfolio, nil
	case "portfolio":
		return CategoryPortfolio, nil
	case "workshop":
		return CategoryWorkshop, nil
	case "team":
		return CategoryTeam, nil
	default:
		return "", fmt.Errorf("invalid media category: %s", s)
	}
}

type MediaItem struct {
	ID           string        `bson:"_id" json:"id"`
	Filename     string        `bson:"filename" json:"filename"`
	OriginalName string        `bson:"original_name" json:"original_name"`
	FileType     FileType      `bson:"file_type" json:"file_type"`
	FilePath     string        `bson:"file_path" json:"file_path"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Category     MediaCategory `bson:"category" json:"category"`
	UploadedAt   time.Time     `bson:"uploaded_at" json:"uploaded_at"`
	IsFeatured   bool          `bson:"is_featured" json:"is_featured"`
}
