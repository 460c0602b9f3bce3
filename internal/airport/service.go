package airport

import (
	"io"
	"strings"
)

type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Service struct {
	airports []Airport
}

// NewService loads the embedded dataset.
func NewService() (*Service, error) {
	return NewServiceFromReader(defaultDataset())
}

func NewServiceFromReader(r io.Reader) (*Service, error) {
	airports, err := loadAirports(r)
	if err != nil {
		return nil, err
	}
	return &Service{airports: airports}, nil
}

// Lookup returns airports whose name contains q, ignoring case. An empty q
// matches nothing.
func (s *Service) Lookup(q string) []Airport {
	matches := make([]Airport, 0)

	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return matches
	}

	for _, a := range s.airports {
		if strings.Contains(strings.ToLower(a.Name), q) {
			matches = append(matches, a)
		}
	}
	return matches
}
