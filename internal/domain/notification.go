package domain

import "encoding/json"

type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	type alias Notification
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if n.ID == "" {
		n.ID = aux.MongoID
	}
	return nil
}

// Unread filters out notifications the user has already seen.
func Unread(all []Notification) []Notification {
	var out []Notification
	for _, n := range all {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}
