// Package summitdata bundles the static summit reference dataset and the
// name normalization shared by every lookup path.
package summitdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aiguilog/aiguilog/internal/domain"
)

//go:embed peaks.json
var peaksJSON []byte

var (
	peaksOnce sync.Once
	peaks     []domain.SummitRecord
	peaksErr  error
)

// Peaks returns the bundled dataset in file order. The slice is shared;
// callers must not mutate it.
func Peaks() ([]domain.SummitRecord, error) {
	peaksOnce.Do(func() {
		if err := json.Unmarshal(peaksJSON, &peaks); err != nil {
			peaksErr = fmt.Errorf("failed to parse bundled summit dataset: %w", err)
		}
	})
	return peaks, peaksErr
}
