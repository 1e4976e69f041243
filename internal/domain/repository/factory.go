package repository

// Gateway describes access to every remote repository behind the API gateway.
type Gateway interface {
	OrderRepository
	SessionRepository
}
