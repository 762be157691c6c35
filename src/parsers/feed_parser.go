// backend/src/parsers/feed_parser.go
package parsers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/username/lotofolio/backend/src/models"
	"github.com/username/lotofolio/backend/src/validation"
)

// ErrFeedFormat marks responses that could not be parsed as the expected
// feed envelope. Callers surface it as a generic load failure; the detail
// only goes to the log.
var ErrFeedFormat = errors.New("unexpected feed format")

type FeedParser struct{}

func NewFeedParser() *FeedParser {
	return &FeedParser{}
}

// ExtractEnvelope strips the non-JSON wrapper the feed puts around its
// payload. The payload is expected to be exactly one JSON object delimited by
// the first '{' and the last '}' in the response text.
func ExtractEnvelope(raw []byte) ([]byte, error) {
	start := bytes.IndexByte(raw, '{')
	end := bytes.LastIndexByte(raw, '}')
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found in feed response", ErrFeedFormat)
	}
	return raw[start : end+1], nil
}

// Parse turns the raw feed response into generic rows keyed by column label.
// Any envelope or JSON problem fails the whole parse; a partially readable
// feed is never rendered.
func (p *FeedParser) Parse(feed io.Reader) ([]models.GenericRow, error) {
	raw, err := io.ReadAll(feed)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	payload, err := ExtractEnvelope(raw)
	if err != nil {
		return nil, err
	}

	var doc models.FeedDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedFormat, err)
	}

	return tableToRows(doc.Table), nil
}

func tableToRows(table models.FeedTable) []models.GenericRow {
	names := make([]string, len(table.Cols))
	for i, col := range table.Cols {
		name := col.Label
		if name == "" {
			name = col.ID
		}
		names[i] = name
	}

	rows := make([]models.GenericRow, 0, len(table.Rows))
	for _, feedRow := range table.Rows {
		row := models.GenericRow{}
		for i, name := range names {
			if name == "" {
				continue // unnamed column, nothing to key the value under
			}
			if _, taken := row[name]; taken {
				continue // first column wins on duplicate labels
			}
			var cell *models.FeedCell
			if i < len(feedRow.Cells) {
				cell = feedRow.Cells[i]
			}
			row[name] = CellDisplayValue(cell)
		}
		rows = append(rows, row)
	}
	return rows
}

// CellDisplayValue converts a raw feed cell to its display-ready value: a
// present typed value wins, otherwise the pre-formatted string, otherwise the
// empty string. Missing cells arrive as nil.
func CellDisplayValue(cell *models.FeedCell) string {
	if cell == nil {
		return ""
	}
	switch v := cell.Value.(type) {
	case string:
		return validation.SanitizeCellValue(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return validation.SanitizeCellValue(cell.Formatted)
}
