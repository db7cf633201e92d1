package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"rogue-engine/internal/domain"
)

// maxBodyLen - защита от мусорного заголовка, который просит гигабайты
const maxBodyLen = 64 << 20

func (s *FileStore) Load(_ context.Context, slot string) (*domain.Snapshot, error) {
	path, err := s.path(slot)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode читает заголовок и тело. Любое несоответствие формата - ErrCorrupt.
func Decode(r io.Reader) (*domain.Snapshot, error) {
	// 1. Читаем заголовок целиком
	var header SaveFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", ErrCorrupt, err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: invalid magic", ErrCorrupt)
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version: %d (expected %d)", ErrCorrupt, header.Version, Version1)
	}
	if header.BodyLen > maxBodyLen {
		return nil, fmt.Errorf("%w: body too large: %d", ErrCorrupt, header.BodyLen)
	}

	// 2. Тело
	body := make([]byte, header.BodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrCorrupt, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if snap.CurrentFloor != int(header.Floor) {
		return nil, fmt.Errorf("%w: floor mismatch: header %d, body %d", ErrCorrupt, header.Floor, snap.CurrentFloor)
	}
	if len(snap.Tiles) != snap.Height || (snap.Height > 0 && len(snap.Tiles[0]) != snap.Width) {
		return nil, fmt.Errorf("%w: tile grid does not match %dx%d", ErrCorrupt, snap.Width, snap.Height)
	}

	snap.SavedAt = header.Timestamp
	return &snap, nil
}

// DecodeBytes - Decode из памяти
func DecodeBytes(data []byte) (*domain.Snapshot, error) {
	return Decode(bytes.NewReader(data))
}
