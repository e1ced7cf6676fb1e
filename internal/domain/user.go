package domain

import "encoding/json"

type User struct {
	ID            string  `json:"id"`
	Fullname      string  `json:"fullname"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	AccountNumber string  `json:"accountNumber"`
	Balance       float64 `json:"amount"`
}

// UnmarshalJSON tolerates the two observed backend versions: the balance
// arrives as "amount" on login/register and as "balance" on the users list,
// and Mongo-backed records carry "_id" instead of "id".
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		MongoID    string   `json:"_id"`
		AltBalance *float64 `json:"balance"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.MongoID
	}
	if aux.AltBalance != nil {
		u.Balance = *aux.AltBalance
	}
	return nil
}
