package domain

import "time"

// Session is the locally persisted "who is signed in" record. It is written
// and replaced wholesale on login/register and deleted wholesale on logout.
type Session struct {
	User    User      `json:"user"`
	SavedAt time.Time `json:"savedAt"`
}
