package common

// TicketHeaderName is the gRPC metadata key used to carry the bearer
// ticket on every call to a protected endpoint.
const TicketHeaderName = "x-custom-auth-ticket"

// BootstrapUser is the identity honored while the credential store holds
// zero users, so the very first administrative client can authenticate
// before any account exists.
const BootstrapUser = "no-user"
