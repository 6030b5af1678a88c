package validate

import (
	"path/filepath"
	"strings"
)

// Media-type extension groups used by upload accept lists. A FileUpload
// accept entry is either a literal extension (".csv") or a group name
// ("image", "video", "audio", "document").
var (
	imageExts = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
		".bmp": true, ".webp": true, ".ico": true, ".svg": true, ".tiff": true,
	}
	videoExts = map[string]bool{
		".mp4": true, ".avi": true, ".mkv": true, ".mov": true, ".webm": true,
	}
	audioExts = map[string]bool{
		".mp3": true, ".wav": true, ".ogg": true, ".m4a": true, ".flac": true,
	}
	documentExts = map[string]bool{
		".pdf": true, ".doc": true, ".docx": true, ".xls": true,
		".xlsx": true, ".ppt": true, ".pptx": true, ".txt": true, ".md": true,
	}
)

// IsImage reports whether ext names an image file.
func IsImage(ext string) bool { return imageExts[strings.ToLower(ext)] }

// IsVideo reports whether ext names a video file.
func IsVideo(ext string) bool { return videoExts[strings.ToLower(ext)] }

// IsAudio reports whether ext names an audio file.
func IsAudio(ext string) bool { return audioExts[strings.ToLower(ext)] }

// IsDocument reports whether ext names a document file.
func IsDocument(ext string) bool { return documentExts[strings.ToLower(ext)] }

// Accepted reports whether path's extension satisfies the accept list.
// An empty accept list accepts everything.
func Accepted(path string, accept []string) bool {
	if len(accept) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range accept {
		switch strings.ToLower(a) {
		case "image":
			if IsImage(ext) {
				return true
			}
		case "video":
			if IsVideo(ext) {
				return true
			}
		case "audio":
			if IsAudio(ext) {
				return true
			}
		case "document":
			if IsDocument(ext) {
				return true
			}
		default:
			if ext == strings.ToLower(a) {
				return true
			}
		}
	}
	return false
}
