package airport

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

//go:embed data/airports.json
var embeddedAirports []byte

type record struct {
	ICAO    string `json:"icao"`
	IATA    string `json:"iata"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// loadAirports reads an ICAO-keyed object, keeping file order and dropping
// rows without an IATA code.
func loadAirports(r io.Reader) ([]Airport, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("airport: read dataset: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("airport: dataset must be a JSON object")
	}

	var airports []Airport
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("airport: read key: %w", err)
		}

		var rec record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("airport: decode record: %w", err)
		}
		if rec.IATA == "" {
			continue
		}
		airports = append(airports, Airport{Code: rec.IATA, Name: rec.Name})
	}

	return airports, nil
}

func defaultDataset() io.Reader {
	return bytes.NewReader(embeddedAirports)
}
