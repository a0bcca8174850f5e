package takeout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"ytopml/models"

	log "github.com/sirupsen/logrus"
)

// Column headers as written by Google Takeout. Matching is by exact header
// text; extra columns are ignored and absent columns yield empty fields.
const (
	HeaderChannelID    = "Channel Id"
	HeaderChannelURL   = "Channel Url"
	HeaderChannelTitle = "Channel Title"
)

// SubscriptionsPath returns the subscriptions.csv location inside a Takeout
// export rooted at baseDir.
func SubscriptionsPath(baseDir string) string {
	return filepath.Join(baseDir, "Takeout", "YouTube and YouTube Music", "subscriptions", "subscriptions.csv")
}

// Load reads and parses the subscriptions export at path. The first row is
// treated as column headers and every following row becomes one record, in
// file order, with no deduplication. Blank lines are skipped. A missing file
// or structurally invalid CSV aborts the load with an error.
func Load(path string) ([]models.SubscriptionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading subscriptions file: %w", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing subscriptions file: %w", err)
	}

	if len(rows) == 0 {
		log.WithFields(log.Fields{
			"path": path,
		}).Warn("Subscriptions file has no header row")
		return nil, nil
	}

	columns := indexColumns(rows[0])

	records := make([]models.SubscriptionRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, models.SubscriptionRecord{
			ChannelID:  fieldAt(row, columns[HeaderChannelID]),
			ChannelURL: fieldAt(row, columns[HeaderChannelURL]),
			Title:      fieldAt(row, columns[HeaderChannelTitle]),
		})
	}

	log.WithFields(log.Fields{
		"path":    path,
		"records": len(records),
	}).Info("Parsed subscriptions file")

	return records, nil
}

// indexColumns maps header text to column position. Missing headers map to
// -1 so lookups fall through to the empty string.
func indexColumns(header []string) map[string]int {
	columns := map[string]int{
		HeaderChannelID:    -1,
		HeaderChannelURL:   -1,
		HeaderChannelTitle: -1,
	}
	for i, name := range header {
		if _, ok := columns[name]; ok {
			columns[name] = i
		}
	}
	return columns
}

func fieldAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
