// Package archive keeps a compressed JSONL record of every day rollover.
package archive

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"furrow/internal/domain/farmer"
)

// DayRecord is one line of the archive.
type DayRecord struct {
	SessionID  string           `json:"session_id"`
	RecordedAt time.Time        `json:"recorded_at"`
	Report     farmer.DayReport `json:"report"`
}

// DayArchive appends DayRecords to hourly rotated .jsonl.zst files under
// Dir.
type DayArchive struct {
	dir    string
	prefix string
	now    func() time.Time
	logger *log.Logger

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

func NewDayArchive(dir string, logger *log.Logger) *DayArchive {
	if logger == nil {
		logger = log.Default()
	}
	return &DayArchive{dir: dir, prefix: "days", now: time.Now, logger: logger}
}

func (a *DayArchive) RecordDay(_ context.Context, sessionID string, report farmer.DayReport) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	at := a.now().UTC()
	hour := at.Format("2006-01-02-15")
	if hour != a.curHour {
		if err := a.rotateLocked(hour); err != nil {
			return fmt.Errorf("rotate day archive: %w", err)
		}
	}

	b, err := json.Marshal(DayRecord{SessionID: sessionID, RecordedAt: at, Report: report})
	if err != nil {
		return err
	}
	if _, err := a.w.Write(b); err != nil {
		return err
	}
	if err := a.w.WriteByte('\n'); err != nil {
		return err
	}
	if err := a.w.Flush(); err != nil {
		return err
	}
	return a.enc.Flush()
}

func (a *DayArchive) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closeLocked()
}

func (a *DayArchive) rotateLocked(hour string) error {
	if err := a.closeLocked(); err != nil {
		a.logger.Printf("day archive: close %s: %v", a.curHour, err)
	}
	path := a.pathForHour(hour)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	a.f = f
	a.enc = enc
	a.w = bufio.NewWriterSize(enc, 64*1024)
	a.curHour = hour
	return nil
}

func (a *DayArchive) closeLocked() error {
	var err1 error
	if a.w != nil {
		_ = a.w.Flush()
	}
	if a.enc != nil {
		err1 = a.enc.Close()
		a.enc = nil
	}
	if a.f != nil {
		_ = a.f.Close()
		a.f = nil
	}
	a.w = nil
	a.curHour = ""
	return err1
}

func (a *DayArchive) pathForHour(hour string) string {
	return filepath.Join(a.dir, fmt.Sprintf("%s-%s.jsonl.zst", a.prefix, hour))
}

// ReadDays decodes every record of one archive file.
func ReadDays(path string) ([]DayRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []DayRecord
	jd := json.NewDecoder(dec)
	for {
		var rec DayRecord
		if err := jd.Decode(&rec); err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, fmt.Errorf("decode %s: %w", path, err)
		}
		out = append(out, rec)
	}
}
