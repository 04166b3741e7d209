package handler

const (
	errInternalServer     = "Internal server error"
	errEmailRegistered    = "Email already registered"
	errInvalidCredentials = "Invalid email or password"
	errDogNotFound        = "Dog not found"
	errOwnerNotFound      = "Owner not found"
)
