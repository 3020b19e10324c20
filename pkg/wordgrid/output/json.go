package output

import (
	"encoding/json"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
)

// ToJSON serializes matches to JSON. An empty result encodes as [].
func ToJSON(matches []models.Match, pretty bool) ([]byte, error) {
	views := make([]models.MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, m.View())
	}

	if pretty {
		return json.MarshalIndent(views, "", "  ")
	}
	return json.Marshal(views)
}
