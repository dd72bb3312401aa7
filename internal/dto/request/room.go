package request

type CreateRoomRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type RenameRoomRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
