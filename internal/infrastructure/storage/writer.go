package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `RGSV` // 4 байта
	Version1    uint32 = 1
)

// SaveFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: только массивы и числа.
type SaveFileHeader struct {
	Magic     [4]byte // 4 байта
	Version   uint32  // 4 байта
	Floor     int32   // 4 байта
	Timestamp int64   // 8 байт
	BodyLen   uint32  // 4 байта
}

// Encode пишет заголовок и JSON-тело снапшота.
func Encode(w io.Writer, snap *domain.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if uint64(len(body)) > math.MaxUint32 {
		return fmt.Errorf("snapshot too large: %d bytes", len(body))
	}

	ts := snap.SavedAt
	if ts == 0 {
		ts = time.Now().Unix()
	}

	// 1. Заголовок одной записью
	header := SaveFileHeader{
		Version:   Version1,
		Floor:     int32(snap.CurrentFloor),
		Timestamp: ts,
		BodyLen:   uint32(len(body)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Тело
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write body: %w", err)
	}
	return nil
}

// EncodeBytes - Encode в память (для SQL-хранилища)
func EncodeBytes(snap *domain.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileStore хранит каждый слот в отдельном файле <dir>/<slot>.rgsv
type FileStore struct {
	SaveDir string
}

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "saves"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save dir: %w", err)
	}
	return &FileStore{SaveDir: dir}, nil
}

func (s *FileStore) path(slot string) (string, error) {
	if !slotPattern.MatchString(slot) {
		return "", fmt.Errorf("invalid save slot %q", slot)
	}
	return filepath.Join(s.SaveDir, slot+".rgsv"), nil
}

// Save пишет во временный файл и переименовывает, чтобы не оставить полупустой сейв.
func (s *FileStore) Save(_ context.Context, slot string, snap *domain.Snapshot) error {
	path, err := s.path(slot)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.SaveDir, slot+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, snap); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "file_store",
		"slot":      slot,
		"floor":     snap.CurrentFloor,
	}).Info("Game saved.")
	return nil
}

func (s *FileStore) Delete(_ context.Context, slot string) error {
	path, err := s.path(slot)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
