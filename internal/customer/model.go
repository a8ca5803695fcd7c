package customer

type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Age     int    `json:"age"`
}

// RegisterRequest carries the registration payload. The contact_email,
// phone10 and street_address tags are registered in internal/validation.
type RegisterRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,contact_email"`
	Phone   string `json:"phone" binding:"required,phone10"`
	Address string `json:"address" binding:"required,street_address"`
	Age     int    `json:"age"`
}
