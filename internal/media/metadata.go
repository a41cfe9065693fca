package media

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Metadata is the weak per-media metadata the ingest collaborator records.
// Both fields may be empty; script detection treats that as unknown.
type Metadata struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}

// LoadMetadata reads meta.json for a media id. A missing or malformed file
// degrades to empty metadata rather than an error.
func LoadMetadata(layout Layout, mediaID string) Metadata {
	var meta Metadata
	data, err := os.ReadFile(layout.MetaPath(mediaID))
	if err != nil {
		return meta
	}
	_ = json.Unmarshal(data, &meta)
	return meta
}

// SaveMetadata writes meta.json for a media id, creating the directory as
// needed. Used by the CLI when metadata is supplied on the command line.
func SaveMetadata(layout Layout, mediaID string, meta Metadata) error {
	path := layout.MetaPath(mediaID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
