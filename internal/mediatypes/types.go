package mediatypes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownExtension is returned when an extension has no content type.
var ErrUnknownExtension = errors.New("unknown extension")

// FileType is a coarse category for a file, derived from its extension.
type FileType string

const (
	// FileTypeImage represents an image file.
	FileTypeImage FileType = "image"
	// FileTypeVideo represents a video file.
	FileTypeVideo FileType = "video"
	// FileTypeAudio represents an audio file.
	FileTypeAudio FileType = "audio"
	// FileTypeText represents a plain or structured text file.
	FileTypeText FileType = "text"
	// FileTypeDocument represents an office or print document.
	FileTypeDocument FileType = "document"
	// FileTypePlaylist represents a playlist file.
	FileTypePlaylist FileType = "playlist"
	// FileTypeOther represents an unknown or uncategorized file type.
	FileTypeOther FileType = "other"
)

// ContentTypes maps lowercase extensions, without the leading dot, to their
// content types. It must not be modified.
var ContentTypes = map[string]string{
	// Text and data
	"txt":  "text/plain",
	"csv":  "text/csv",
	"tsv":  "text/tab-separated-values",
	"html": "text/html",
	"htm":  "text/html",
	"css":  "text/css",
	"js":   "text/javascript",
	"mjs":  "text/javascript",
	"md":   "text/markdown",
	"ics":  "text/calendar",
	"json": "application/json",
	"xml":  "application/xml",
	"yaml": "application/yaml",
	"yml":  "application/yaml",
	"rss":  "application/rss+xml",
	"atom": "application/atom+xml",

	// Documents
	"pdf":  "application/pdf",
	"rtf":  "application/rtf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"odt":  "application/vnd.oasis.opendocument.text",
	"ods":  "application/vnd.oasis.opendocument.spreadsheet",

	// Archives and binaries
	"zip":  "application/zip",
	"gz":   "application/gzip",
	"tar":  "application/x-tar",
	"7z":   "application/x-7z-compressed",
	"bin":  "application/octet-stream",
	"wasm": "application/wasm",

	// Images
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"ico":  "image/x-icon",
	"tiff": "image/tiff",
	"tif":  "image/tiff",
	"heic": "image/heic",
	"heif": "image/heif",
	"avif": "image/avif",

	// Audio
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"ogg":  "audio/ogg",
	"flac": "audio/flac",
	"aac":  "audio/aac",
	"m4a":  "audio/mp4",

	// Videos
	"mp4":  "video/mp4",
	"mkv":  "video/x-matroska",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",
	"wmv":  "video/x-ms-wmv",
	"flv":  "video/x-flv",
	"webm": "video/webm",
	"m4v":  "video/x-m4v",
	"mpeg": "video/mpeg",
	"mpg":  "video/mpeg",
	"3gp":  "video/3gpp",
	"ts":   "video/mp2t",

	// Playlists
	"wpl":  "application/vnd.ms-wpl",
	"m3u":  "audio/x-mpegurl",
	"m3u8": "application/vnd.apple.mpegurl",
	"pls":  "audio/x-scpls",
}

var documentTypes = map[string]bool{
	"pdf": true, "rtf": true,
	"doc": true, "docx": true,
	"xls": true, "xlsx": true,
	"ppt": true, "pptx": true,
	"odt": true, "ods": true,
}

var playlistTypes = map[string]bool{
	"wpl": true, "m3u": true, "m3u8": true, "pls": true,
}

var textApplicationTypes = map[string]bool{
	"application/json":     true,
	"application/xml":      true,
	"application/yaml":     true,
	"application/rss+xml":  true,
	"application/atom+xml": true,
}

// ExtensionOf returns the extension of the file named by path, without the
// leading dot. It returns "" when the base name has no dot, when the only dot
// starts a dotfile name (".bashrc"), or when the name ends with a dot.
func ExtensionOf(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return ""
	}
	return base[idx+1:]
}

// Lookup returns the content type for ext. Matching is case-insensitive and a
// single leading dot is ignored. Unknown extensions, including the empty
// extension, return ErrUnknownExtension.
func Lookup(ext string) (string, error) {
	key := normalize(ext)
	if ct, ok := ContentTypes[key]; ok {
		return ct, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
}

// ContentTypeFor resolves the content type of the file named by path.
func ContentTypeFor(path string) (string, error) {
	return Lookup(ExtensionOf(path))
}

// ContentTypeForFile resolves the content type of an open file from its name.
func ContentTypeForFile(f *os.File) (string, error) {
	return ContentTypeFor(f.Name())
}

// GetFileType returns the category for ext. Like Lookup it ignores case and a
// leading dot. Returns FileTypeOther if the extension is not recognized.
func GetFileType(ext string) FileType {
	key := normalize(ext)
	ct, ok := ContentTypes[key]
	if !ok {
		return FileTypeOther
	}

	switch {
	case playlistTypes[key]:
		return FileTypePlaylist
	case documentTypes[key]:
		return FileTypeDocument
	case strings.HasPrefix(ct, "image/"):
		return FileTypeImage
	case strings.HasPrefix(ct, "video/"):
		return FileTypeVideo
	case strings.HasPrefix(ct, "audio/"):
		return FileTypeAudio
	case strings.HasPrefix(ct, "text/"), textApplicationTypes[ct]:
		return FileTypeText
	}
	return FileTypeOther
}

// Extensions returns the known extensions in lexicographic order.
func Extensions() []string {
	exts := make([]string, 0, len(ContentTypes))
	for ext := range ContentTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
