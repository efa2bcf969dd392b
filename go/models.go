package commerceserver

// Customer is the transport representation of a customer. Password is
// accepted on writes and never echoed back.
type Customer struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Product is the transport representation of a catalog product.
type Product struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int32   `json:"stock"`
}

// Order is the transport representation of an order. ProductIds lists the
// resolved product references; TotalAmount is derived server-side.
type Order struct {
	Id          int64   `json:"id"`
	CustomerId  int64   `json:"customerId"`
	ProductIds  []int64 `json:"productIds"`
	TotalAmount float64 `json:"totalAmount"`
}

// OrderRequest is the write payload for creating or replacing an order.
type OrderRequest struct {
	CustomerId int64   `json:"customerId"`
	ProductIds []int64 `json:"productIds"`
}

// LoginRequest carries the credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the self-registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
