package request

type CreateVenueRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	City        string `json:"city" binding:"required,max=100"`
	Category    string `json:"category" binding:"required,max=50"`
	Address     string `json:"address" binding:"omitempty,max=300"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

type ModerateVenueRequest struct {
	Status string `json:"status" binding:"required"`
}
