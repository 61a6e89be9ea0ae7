package usecase

type CaptureLeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city"`
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
}

type UpdateLeadInput struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	City    *string `json:"city,omitempty"`
	Message *string `json:"message,omitempty"`
	Source  *string `json:"source,omitempty"`
	Status  *string `json:"status,omitempty"`
}

type ListLeadsInput struct {
	Search   string
	Status   string
	Source   string
	From     string
	To       string
	Page     int
	PageSize int
}

type CreateAppointmentInput struct {
	LeadID   string `json:"lead_id,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Title    string `json:"title,omitempty"`
	City     string `json:"city,omitempty"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type UpdateAppointmentInput struct {
	LeadID   *string `json:"lead_id,omitempty"`
	ClientID *string `json:"client_id,omitempty"`
	Title    *string `json:"title,omitempty"`
	City     *string `json:"city,omitempty"`
	Location *string `json:"location,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Start    *string `json:"start,omitempty"`
	End      *string `json:"end,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// ListAppointmentsFilter mirrors the admin agenda filters. From and To bound
// the start time inclusively; Status "all" or empty means no status filter;
// City is a case-insensitive substring match.
type ListAppointmentsFilter struct {
	From   string
	To     string
	Status string
	City   string
}

type CreateClientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type UpdateClientInput struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	City    *string `json:"city,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Status  *string `json:"status,omitempty"`
}

type ListClientsInput struct {
	Search string
	Status string
	Limit  int
	Offset int
}

type PackageInput struct {
	Title       string `json:"title"`
	Price       int    `json:"price"`
	LessonCount int    `json:"lesson_count"`
	Savings     string `json:"savings,omitempty"`
	CardColor   string `json:"card_color,omitempty"`
}

type AreaInput struct {
	City      string `json:"city"`
	ImageURL  string `json:"image_url,omitempty"`
	Active    bool   `json:"active"`
	SortOrder int    `json:"sort_order"`
}

type VideoInput struct {
	YoutubeID string `json:"youtube_id"`
	Title     string `json:"title,omitempty"`
	Active    bool   `json:"active"`
	SortOrder int    `json:"sort_order"`
}
