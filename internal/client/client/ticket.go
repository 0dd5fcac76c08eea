package client

import (
	"context"

	"github.com/soteriapass/pswmgr/internal/common"
)

// ticketCreds attaches the issued authentication token to every call as
// the ticket metadata field. It is installed as per-RPC credentials on
// the vault and user management connections.
type ticketCreds struct {
	token string
}

func (c ticketCreds) GetRequestMetadata(_ context.Context, _ ...string) (map[string]string, error) {
	return map[string]string{common.TicketHeaderName: c.token}, nil
}

// RequireTransportSecurity pins the ticket to TLS connections; gRPC
// refuses to send it over plaintext.
func (c ticketCreds) RequireTransportSecurity() bool {
	return true
}
