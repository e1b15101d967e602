// Package loader reads payment files and turns them into pain.001 messages.
// Two input formats are supported: a YAML document describing a complete
// message and a flat CSV transaction list that borrows its message and debtor
// details from the command line.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"fjacquet/pain001/internal/logging"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/message"
)

// Meta carries the message and batch level facts a bare transaction list
// cannot express itself. A YAML input overrides these with its own values.
type Meta struct {
	MessageID       string
	InitiatingParty string
	Version         pain001.Version
	PaymentID       string
	DebtorName      string
	DebtorIBAN      string
	DebtorBIC       string
	ExecutionDate   string
}

// Load reads the payment file and builds the message. The format is picked by
// file extension: .yaml/.yml or .csv.
func Load(path string, meta Meta, logger logging.Logger) (*message.CustomerCreditTransfer, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Loading payment file", logging.F(logging.FieldFile, path))

	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Error("Failed to open payment file")
		return nil, fmt.Errorf("error opening payment file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(file, meta, logger)
	case ".csv":
		return LoadCSV(file, meta, logger)
	}
	return nil, fmt.Errorf("unsupported payment file format: %s", filepath.Ext(path))
}

// fallbackID returns the id or a generated one when the input left it empty.
// The hyphens are dropped so the 32 characters fit the 35 character identifier
// limit.
func fallbackID(id string) string {
	if id != "" {
		return id
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// parseDate parses an ISO date such as 2026-09-01.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid execution date %q: %w", value, err)
	}
	return date, nil
}
