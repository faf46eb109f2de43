// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/application/usecase/ledger"
)

// SnapshotResponse is one event of a ledger stream. Data holds the full
// collection: transactions, entrepreneurs or users.
type SnapshotResponse struct {
	Collection string `json:"collection"`
	Data       any    `json:"data"`
}

// ToSnapshotResponse converts a feed snapshot.
func ToSnapshotResponse(s ledger.Snapshot) SnapshotResponse {
	resp := SnapshotResponse{Collection: string(s.Collection)}
	switch s.Collection {
	case adapter.CollectionTransactions:
		resp.Data = ToTransactionResponses(s.Transactions)
	case adapter.CollectionEntrepreneurs:
		resp.Data = ToEntrepreneurResponses(s.Entrepreneurs)
	case adapter.CollectionUsers:
		users := make([]UserResponse, len(s.Users))
		for i, u := range s.Users {
			users[i] = ToUserResponse(u)
		}
		resp.Data = users
	}
	return resp
}
