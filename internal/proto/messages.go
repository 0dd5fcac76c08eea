package proto

// AuthenticationRequest carries the credentials presented to
// Authentication.Authenticate.
type AuthenticationRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// AuthReply reports the authentication outcome and, on success, the
// issued bearer token.
type AuthReply struct {
	Success bool   `json:"success,omitempty"`
	Token   string `json:"token,omitempty"`
}

// SimpleRequest is an empty request; the caller is identified solely by
// the ticket metadata on the call.
type SimpleRequest struct{}

// SimpleReply reports success redundantly with the call status. Both are
// always set consistently.
type SimpleReply struct {
	Success bool `json:"success,omitempty"`
}

// PasswordEntry is a single vault row. The owning user is never part of
// the message; it is derived server-side from the verified identity.
type PasswordEntry struct {
	AccountName string `json:"account_name,omitempty"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
	Extra       string `json:"extra,omitempty"`
}

// PasswordList is the full collection of the caller's vault rows.
type PasswordList struct {
	Passwords []*PasswordEntry `json:"passwords,omitempty"`
}

// UserCreationRequest asks for a new account, optionally with 2FA
// enrollment.
type UserCreationRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Add_2Fa  bool   `json:"add_2fa,omitempty"`
}

// UserCreationReply carries the one-time 2FA disclosure: the shared
// secret, the scratch codes, and the rendered QR PNG. None of these are
// retrievable again through this service.
type UserCreationReply struct {
	Success      bool    `json:"success,omitempty"`
	Secret       string  `json:"secret,omitempty"`
	ScratchCodes []int32 `json:"scratch_codes,omitempty"`
	Qrcode       []byte  `json:"qrcode,omitempty"`
}

func (x *PasswordEntry) GetAccountName() string {
	if x == nil {
		return ""
	}
	return x.AccountName
}

func (x *PasswordEntry) GetUsername() string {
	if x == nil {
		return ""
	}
	return x.Username
}

func (x *PasswordEntry) GetPassword() string {
	if x == nil {
		return ""
	}
	return x.Password
}

func (x *PasswordEntry) GetExtra() string {
	if x == nil {
		return ""
	}
	return x.Extra
}
