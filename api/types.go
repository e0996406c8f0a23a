package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	homeHandler        homeHandler
	portfolioHandler   portfolioHandler
	contactHandler     contactHandler
	healthHandler      healthHandler
	profileHandler     profileHandler
	projectHandler     projectHandler
	educationHandler   educationHandler
	skillHandler       skillHandler
	achievementHandler achievementHandler
	certificateHandler certificateHandler
	galleryHandler     galleryHandler
	typingTextHandler  typingTextHandler
	messageHandler     messageHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// contactResponse is the envelope of the contact endpoint
type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
