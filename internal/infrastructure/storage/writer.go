package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"crawl-server/internal/domain"
)

const (
	MagicHeader string = `DCRL` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader - представление заголовка файла повтора в памяти.
// Только числа и массивы, binary.Write пишет структуру целиком.
type ReplayFileHeader struct {
	Magic       [4]byte
	Version     uint32
	Seed        int64
	Timestamp   int64
	ActionCount int32
}

// ActionHeader - заголовок каждой записи действия.
type ActionHeader struct {
	Turn       int32
	ActionType uint8
	PayloadLen uint16
}

// ReplayService пишет и читает файлы повторов.
type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &ReplayService{SaveDir: dir}
}

// Save пишет ленту повтора в файл. Имя собирается из зерна и времени,
// двух одинаковых файлов не бывает.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%d.dcrl", session.Seed, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, session); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	header := ReplayFileHeader{
		Version:     Version1,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, act := range s.Actions {
		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		actHeader := ActionHeader{
			Turn:       int32(act.Turn),
			ActionType: uint8(act.Action),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}

		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
