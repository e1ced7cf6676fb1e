package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDecodeTolerance(t *testing.T) {
	tests := []struct {
		name string
		body string
		want User
	}{
		{
			name: "canonical fields",
			body: `{"id":"u-1","fullname":"Ade Balogun","email":"ade@meshpay.dev","phone":"09012345678","accountNumber":"9012345678","amount":2500}`,
			want: User{ID: "u-1", Fullname: "Ade Balogun", Email: "ade@meshpay.dev", Phone: "09012345678", AccountNumber: "9012345678", Balance: 2500},
		},
		{
			name: "mongo id and balance field",
			body: `{"_id":"65f1","fullname":"Ade Balogun","email":"ade@meshpay.dev","balance":320.5}`,
			want: User{ID: "65f1", Fullname: "Ade Balogun", Email: "ade@meshpay.dev", Balance: 320.5},
		},
		{
			name: "id wins over _id",
			body: `{"id":"u-1","_id":"65f1","fullname":"Ade Balogun"}`,
			want: User{ID: "u-1", Fullname: "Ade Balogun"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got User
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionMongoIDFallback(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"t-1","from":"1","to":"2","amount":5,"status":"success"}`), &tx))
	assert.Equal(t, "t-1", tx.ID)
	assert.Equal(t, StatusSuccess, tx.Status)
}

func TestTransactionDirection(t *testing.T) {
	tx := Transaction{From: "9012345678", To: "8023456789"}
	assert.Equal(t, DirectionSent, tx.Direction("9012345678"))
	assert.Equal(t, DirectionReceived, tx.Direction("8023456789"))
}

func TestUnreadFiltersReadNotifications(t *testing.T) {
	all := []Notification{
		{ID: "n-1", Read: true},
		{ID: "n-2"},
		{ID: "n-3", Read: true},
	}
	unread := Unread(all)
	require.Len(t, unread, 1)
	assert.Equal(t, "n-2", unread[0].ID)

	assert.Nil(t, Unread(nil))
}

func TestParsePageFallsBackToWelcome(t *testing.T) {
	assert.Equal(t, PageDashboard, ParsePage("dashboard"))
	assert.Equal(t, PageWelcome, ParsePage("bogus"))
	assert.False(t, Page("bogus").Valid())
	assert.True(t, PageSendMoney.Valid())
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 400, Message: "Insufficient funds"}
	assert.Equal(t, "Insufficient funds", err.Error())
	assert.Equal(t, "Network error. Please check your connection.", ErrNetwork.Error())
}
