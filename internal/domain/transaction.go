package domain

import "encoding/json"

type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
	StatusPending TransactionStatus = "pending"
)

type Transaction struct {
	ID           string            `json:"id"`
	From         string            `json:"from"`
	To           string            `json:"to"`
	Amount       float64           `json:"amount"`
	Timestamp    string            `json:"timestamp"` // ISO-8601 as sent by the backend
	Status       TransactionStatus `json:"status"`
	Description  string            `json:"description,omitempty"`
	SenderName   string            `json:"senderName"`
	ReceiverName string            `json:"receiverName"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = aux.MongoID
	}
	return nil
}

type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// Direction derives sent/received by comparing the transaction endpoints
// against the viewing user's account number.
func (t Transaction) Direction(account string) Direction {
	if t.From == account {
		return DirectionSent
	}
	return DirectionReceived
}
