package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
)

func TestToJSON(t *testing.T) {
	matches := []models.Match{
		{Word: "CAT", Row: 0, Col: 0, Direction: models.Across},
		{Word: "DOG", Row: 4, Col: 0, Direction: models.UpRight},
	}

	data, err := ToJSON(matches, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	expected := `[{"word":"CAT","row":0,"col":0,"direction":"across","heading":"E"},` +
		`{"word":"DOG","row":4,"col":0,"direction":"up right","heading":"NE"}]`
	if string(data) != expected {
		t.Errorf("ToJSON = %s, expected %s", data, expected)
	}
}

func TestToJSON_Empty(t *testing.T) {
	data, err := ToJSON(nil, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("ToJSON(nil) = %s, expected []", data)
	}
}

func TestToJSON_PrettyDecodes(t *testing.T) {
	matches := []models.Match{{Word: "OWL", Row: 1, Col: 2, Direction: models.DownLeft}}

	data, err := ToJSON(matches, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Errorf("Expected indented output, got %s", data)
	}

	var decoded []models.Match
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != matches[0] {
		t.Errorf("Decoded %+v, expected %+v", decoded, matches)
	}
}
