package request

type CreateBookingRequest struct {
	RoomID       string  `json:"room_id" validate:"required,uuid"`
	UserName     string  `json:"user_name" validate:"required,max=100"`
	UserIdentity string  `json:"user_identity" validate:"required,max=100"`
	Purpose      *string `json:"purpose" validate:"omitempty,max=500"`
	Category     string  `json:"category" validate:"required,oneof=activity meeting course"`
	StartTime    string  `json:"start_time" validate:"required"`
	EndTime      string  `json:"end_time" validate:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type SemesterBookingRequest struct {
	RoomID       string  `json:"room_id" validate:"required,uuid"`
	UserName     string  `json:"user_name" validate:"required,max=100"`
	UserIdentity string  `json:"user_identity" validate:"required,max=100"`
	Purpose      *string `json:"purpose" validate:"omitempty,max=500"`
	Category     string  `json:"category" validate:"required,oneof=activity meeting course"`
	StartTimeHM  string  `json:"start_time_hm" validate:"required,datetime=15:04"`
	EndTimeHM    string  `json:"end_time_hm" validate:"required,datetime=15:04"`
	StartDate    string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string  `json:"end_date" validate:"required,datetime=2006-01-02"`
}
