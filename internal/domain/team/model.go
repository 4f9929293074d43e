package team

import "fmt"

// Team is one NBA franchise from the static reference catalog.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
