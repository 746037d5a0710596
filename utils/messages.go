package utils

// Response detail strings shared by the route layer.
const (
	MsgAlreadyExists   = "Account already exists"
	MsgInvalidEmail    = "Invalid email"
	MsgInvalidPassword = "Invalid password"
	MsgInvalidToken    = "Invalid refresh token"
	MsgNotFound        = "Not found"
	MsgForbidden       = "Forbidden access"
	MsgUserCreated     = "User successfully created"
)
