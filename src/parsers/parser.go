// backend/src/parsers/parser.go
package parsers

import (
	"io"

	"github.com/username/lotofolio/backend/src/models"
)

type Parser interface {
	Parse(feed io.Reader) ([]models.GenericRow, error)
}
