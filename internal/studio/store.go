package studio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"voiceshowcase/internal/domain/showcase"
)

// DefaultReportName is the manifest file inside the output directory
const DefaultReportName = "showcase_report.json"

// Store owns the output directory: audio samples and the report manifest
type Store struct {
	dir        string
	reportFile string
}

func NewStore(dir, reportName string) *Store {
	if reportName == "" {
		reportName = DefaultReportName
	}
	return &Store{
		dir:        dir,
		reportFile: filepath.Join(dir, reportName),
	}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) ReportPath() string {
	return s.reportFile
}

// Ensure creates the output directory; an existing directory is fine.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}
	return nil
}

// PathFor returns the path of a sample file inside the output directory
func (s *Store) PathFor(name string) string {
	return filepath.Join(s.dir, name)
}

// WriteAudio writes (or overwrites) one sample file
func (s *Store) WriteAudio(path string, audio []byte) error {
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return fmt.Errorf("failed to write audio to %s: %w", path, err)
	}
	return nil
}

// SaveReport replaces any previous report
func (s *Store) SaveReport(report showcase.Report) error {
	file, err := os.Create(s.reportFile)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"voices": len(report.Voices),
		"file":   s.reportFile,
	}).Info("saved showcase report")

	return nil
}

// LoadReport reads the last persisted report
func (s *Store) LoadReport() (*showcase.Report, error) {
	file, err := os.Open(s.reportFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	defer file.Close()

	var report showcase.Report
	if err := json.NewDecoder(file).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report file: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"voices":    len(report.Voices),
		"timestamp": report.Timestamp,
	}).Info("loaded showcase report")

	return &report, nil
}
