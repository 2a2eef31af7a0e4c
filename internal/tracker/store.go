package tracker

import (
	"os"
	"path/filepath"

	"gamepulse/internal/models"
	"gamepulse/internal/structures"
	"gamepulse/internal/tracker/interfaces"
	json "github.com/goccy/go-json"
)

// SnapshotStore persists the canonical snapshot as a single file. Saves
// replace the previous value wholesale via a temp file and rename, so
// readers never observe a partial write.
type SnapshotStore struct {
	path       string
	compressor interfaces.CompressorInterface
}

type SnapshotStoreInterface interface {
	Save(snap *models.Snapshot) error
	Load() (*models.Snapshot, error)
}

func NewSnapshotStore(conf *structures.Config, compressor interfaces.CompressorInterface) SnapshotStoreInterface {
	return &SnapshotStore{
		path:       conf.Snapshot.FilePath,
		compressor: compressor,
	}
}

func (s *SnapshotStore) Save(snap *models.Snapshot) error {
	jsonData, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	data, err := s.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, s.path)
}

func (s *SnapshotStore) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.ErrSnapshotNotFound
		}
		return nil, err
	}

	decompressed, err := s.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(decompressed, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
