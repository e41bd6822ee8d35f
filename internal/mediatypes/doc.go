// Package mediatypes resolves content types from file extensions.
//
// This package is dependency-free so it can be imported anywhere without
// creating import cycles. It holds a fixed extension table and pure functions
// over it.
//
// # Extensions
//
// ExtensionOf returns the part of a file name after its last dot, without the
// dot:
//
//	mediatypes.ExtensionOf("reports/report.v2.csv") // "csv"
//	mediatypes.ExtensionOf("README")                // ""
//	mediatypes.ExtensionOf(".bashrc")               // ""
//
// # Content Types
//
// Lookup maps an extension to its content type. Matching ignores case, so
// "JSON" and "json" resolve alike. A miss is reported as ErrUnknownExtension;
// there is no octet-stream fallback, callers pick their own default:
//
//	ct, err := mediatypes.ContentTypeFor("data/export.json") // "application/json"
//	if errors.Is(err, mediatypes.ErrUnknownExtension) {
//	    ct = "application/octet-stream"
//	}
//
// # File Types
//
// GetFileType groups extensions into coarse categories:
//
//	mediatypes.FileTypeImage    // jpg, png, gif, ...
//	mediatypes.FileTypeVideo    // mp4, mkv, ...
//	mediatypes.FileTypeAudio    // mp3, flac, ...
//	mediatypes.FileTypeText     // txt, csv, json, ...
//	mediatypes.FileTypeDocument // pdf, docx, ...
//	mediatypes.FileTypePlaylist // wpl, m3u, ...
//	mediatypes.FileTypeOther    // anything else
package mediatypes
