package httpapi

// echoRequest is the decoded body of POST /get. Pointers let the validator
// tell a missing field from an empty string.
type echoRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// echoPayload is written back unchanged, in this field order.
type echoPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r echoRequest) payload() echoPayload {
	var p echoPayload
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Password != nil {
		p.Password = *r.Password
	}
	return p
}
