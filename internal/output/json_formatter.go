package output

import (
	"encoding/json"

	"github.com/nestegg/projector/internal/domain"
)

// JSONFormatter emits the complete batch as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(batch *domain.Batch) ([]byte, error) {
	return json.MarshalIndent(batch, "", "  ")
}
